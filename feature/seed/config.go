package seed

// Config holds configuration for seeding.
type Config struct {
	// BatchSize is the number of rows per INSERT statement.
	BatchSize int `mapstructure:"batch_size" default:"500"`
	// AllowUnknownColumns drops record keys that match no table column
	// instead of failing.
	AllowUnknownColumns bool `mapstructure:"allow_unknown_columns" default:"false"`
}

// DefaultBatchSize is used when BatchSize is not positive.
const DefaultBatchSize = 500

func (c Config) batchSize() int {
	if c.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return c.BatchSize
}
