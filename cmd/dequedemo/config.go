package main

import (
	"os"
	"time"

	"github.com/juju/errors"

	"github.com/dmitrorezn/gocommon/jsonutil"
)

type Cfg struct {
	Workers int
	Items   []string
	Delay   time.Duration
}

func NewCfg() Cfg {
	return Cfg{
		Workers: 4,
		Delay:   10 * time.Millisecond,
	}
}

func (c Cfg) WithWorkers(n int) Cfg {
	c.Workers = n

	return c
}

func (c Cfg) WithItems(items []string) Cfg {
	c.Items = items

	return c
}

func (c Cfg) WithDelay(d time.Duration) Cfg {
	c.Delay = d

	return c
}

// LoadCfg reads a JSON object such as
//
//	{ "Workers": 8, "Items": ["a", "b"], "DelayMs": 5 }
//
// Entries that are absent keep their NewCfg defaults.
func LoadCfg(path string) (Cfg, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return Cfg{}, errors.Annotatef(err, "reading config %q", path)
	}

	return ParseCfg(doc)
}

func ParseCfg(doc []byte) (Cfg, error) {
	cfg := NewCfg()

	workers, err := jsonutil.GetNumber[int](doc, "Workers")
	switch {
	case err == nil:
		if workers < 1 {
			return Cfg{}, errors.NotValidf("Workers %d", workers)
		}
		cfg = cfg.WithWorkers(workers)
	case !errors.Is(err, errors.NotFound):
		return Cfg{}, errors.Trace(err)
	}

	items, err := jsonutil.GetArray[string](doc, "Items")
	switch {
	case err == nil:
		cfg = cfg.WithItems(items)
	case !errors.Is(err, errors.NotFound):
		return Cfg{}, errors.Trace(err)
	}

	delay, err := jsonutil.GetNumber[int64](doc, "DelayMs")
	switch {
	case err == nil:
		cfg = cfg.WithDelay(time.Duration(delay) * time.Millisecond)
	case !errors.Is(err, errors.NotFound):
		return Cfg{}, errors.Trace(err)
	}

	return cfg, nil
}
