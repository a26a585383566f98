package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"mysql"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"seed"`
	// TimeoutSeconds bounds the connection setup, each I/O call and each ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// ConnectRetries is how many extra pings are attempted before giving up.
	ConnectRetries int `mapstructure:"connect_retries" default:"3"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)
