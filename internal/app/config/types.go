package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Logger  Logger
	}
	MongoDB struct {
		URI                             string
		DbName                          string
		ConnectTimeoutInSeconds         int
		ServerSelectionTimeoutInSeconds int
		SocketTimeoutInSeconds          int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App App
	}
	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		FrontendURL                string
		MaxRequests                int
		ShutdownTimeoutInSeconds   int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
	}
)
