package config

type Config struct {
	AnnotationPath string
	ImagePath      string
	OutputDir      string
	ColormapPath   string
	Strict         bool
	ShowStats      bool
	BuildVersion   string
}
