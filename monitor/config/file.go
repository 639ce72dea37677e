package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// SeriesConfig Overrides for one series.
type SeriesConfig struct {
	Window int      `yaml:"window"`
	Lower  *float64 `yaml:"lower"`
	Upper  *float64 `yaml:"upper"`
}

// File Layout of the YAML config file.
//
//	window: 120
//	variance: sample
//	series:
//	  latency:
//	    window: 30
//	    upper: 250
type File struct {
	Window   int                     `yaml:"window"`
	Variance string                  `yaml:"variance"`
	Lower    *float64                `yaml:"lower"`
	Upper    *float64                `yaml:"upper"`
	Series   map[string]SeriesConfig `yaml:"series"`
}

func LoadFile(path string) (*File, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	return ParseFile(data)
}

func ParseFile(data []byte) (*File, error) {
	file := &File{}
	if err := yaml.UnmarshalStrict(data, file); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if err := file.validate(); err != nil {
		return nil, err
	}
	return file, nil
}

func (f *File) validate() error {
	if f.Window < 0 {
		return errors.Errorf("invalid window %d", f.Window)
	}
	switch f.Variance {
	case "", "population", "sample":
	default:
		return errors.Errorf("invalid variance form %q, want population or sample", f.Variance)
	}
	for name, series := range f.Series {
		if series.Window < 0 {
			return errors.Errorf("invalid window %d of series %s", series.Window, name)
		}
		if series.Lower != nil && series.Upper != nil && *series.Lower > *series.Upper {
			return errors.Errorf("lower bound above upper bound of series %s", name)
		}
	}
	return nil
}

// Lookup resolves the config of a series: series entries first, then
// file-wide values, then window. A file-wide window replaces the window
// argument even if it came from the command line.
func (f *File) Lookup(name string, window int) SeriesConfig {
	if f == nil {
		return SeriesConfig{Window: window}
	}

	ret := SeriesConfig{Window: window, Lower: f.Lower, Upper: f.Upper}
	if f.Window > 0 {
		ret.Window = f.Window
	}
	series, ok := f.Series[name]
	if !ok {
		return ret
	}
	if series.Window > 0 {
		ret.Window = series.Window
	}
	if series.Lower != nil {
		ret.Lower = series.Lower
	}
	if series.Upper != nil {
		ret.Upper = series.Upper
	}
	return ret
}

// SampleVariance reports if the file asks for sample variance.
func (f *File) SampleVariance() bool {
	return f != nil && f.Variance == "sample"
}
