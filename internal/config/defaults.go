package config

const (
	defaultStopwordsFile = "~/.config/docsim/stopwords.txt"
	defaultLogDir        = "~/.local/share/docsim/logs"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultMaxFeatures   = 3000
	defaultHMM           = true
)

func defaultEncodings() []string {
	return []string{"utf-8", "gbk"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StopwordsFile: defaultStopwordsFile,
			LogDir:        defaultLogDir,
		},
		Ingestion: Ingestion{
			Encodings: defaultEncodings(),
		},
		Tokenizer: Tokenizer{
			HMM: defaultHMM,
		},
		Vectorizer: Vectorizer{
			MaxFeatures: defaultMaxFeatures,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
