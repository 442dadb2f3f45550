package catalogue

const (
	DriverFile     = "file"
	DriverStorage  = "storage"
	DriverDatabase = "database"
)

// Config holds configuration for loading the managed rule catalogue.
type Config struct {
	// Driver selects the catalogue source (file, storage, database).
	Driver string `mapstructure:"driver" default:"file"`
	// Path is the local CSV file read by the file driver.
	Path string `mapstructure:"path" default:"ams_config_rules/ams_config_rules.csv"`
	// ObjectName is the CSV object read from the storage bucket by the storage driver.
	ObjectName string `mapstructure:"object_name" default:"ams_config_rules/ams_config_rules.csv"`
}
