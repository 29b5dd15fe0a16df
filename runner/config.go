package runner

// workerShape selects how the runner sizes its worker slots.
type workerShape int

const (
	shapeDynamic workerShape = iota
	shapeFixed
)

// config holds Runner configuration.
type config struct {
	shape       workerShape
	fixedSize   uint
	errorsBuf   uint
	panicsAsErr bool
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		shape:       shapeDynamic,
		errorsBuf:   1024,
		panicsAsErr: true,
	}
}
