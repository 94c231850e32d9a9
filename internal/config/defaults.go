package config

// DefaultFilenameFormat renders one directory per capture day, one per camera
// model, and a timestamped filename disambiguated by the branch number.
const DefaultFilenameFormat = "{y}{m}{d}/{Model}/{y}{m}{d}{H}{M}{S}-{bn}.{FileTypeExtension}"

const (
	defaultOutputBase     = "~/OutBox"
	defaultExiftoolBinary = "exiftool"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			PhotoDir: defaultOutputBase,
			VideoDir: defaultOutputBase,
		},
		Organize: Organize{
			FilenameFormat: DefaultFilenameFormat,
		},
		Exiftool: Exiftool{
			Binary: defaultExiftoolBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
