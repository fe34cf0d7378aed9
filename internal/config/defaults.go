package config

const (
	defaultSourceDir = "~/Downloads"
	defaultLogDir    = "~/.local/share/sortd/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults. The built-in
// categories mirror a conventional home directory layout.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDir: defaultSourceDir,
			LogDir:    defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Categories: []Category{
			{
				Name:        "images",
				Destination: "~/Pictures",
				Extensions:  []string{"jpg", "jpeg", "png", "gif", "bmp", "tiff"},
			},
			{
				Name:        "documents",
				Destination: "~/Documents",
				Extensions:  []string{"pdf", "docx", "doc", "txt", "xls", "xlsx", "ppt", "pptx"},
			},
			{
				Name:        "videos",
				Destination: "~/Videos",
				Extensions:  []string{"mp4", "avi", "mkv", "mov"},
			},
			{
				Name:        "music",
				Destination: "~/Music",
				Extensions:  []string{"mp3", "wav", "flac", "aac"},
			},
			{
				Name:        "archives",
				Destination: "~/Archives",
				Extensions:  []string{"zip", "rar", "tar", "gz", "7z"},
			},
			{
				Name:        "executables",
				Destination: "~/Executables",
				Extensions:  []string{"exe", "msi", "dmg", "deb", "rpm"},
			},
		},
	}
}
