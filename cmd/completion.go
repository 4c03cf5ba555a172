package cmd

import (
	"flag"

	"github.com/etnz/compound"
	"github.com/etnz/compound/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors predicts the values of flags that have a known set of values.
var flagPredictors = map[string]complete.Predictor{
	"format":     predict.Set{"text", "md", "json"},
	"log-level":  predict.Set{"debug", "info", "warn", "error"},
	"output-dir": predict.Dirs("*"),
	"env-file":   predict.Files("*"),
}

// dropPredictor predicts the catalog names of -drop.
func dropPredictor() complete.Predictor {
	var names predict.Set
	for _, e := range compound.Catalog {
		names = append(names, e.Name+":")
	}
	return names
}

// predictFlags builds the completion of every flag in fs.
func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case flagPredictors[f.Name] != nil:
			flags[f.Name] = flagPredictors[f.Name]
		case f.Name == "drop":
			flags[f.Name] = dropPredictor()
		case isBoolFlag(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// Completion returns the shell completion of the application, global flags are read from root.
func Completion(root *flag.FlagSet) *complete.Command {
	c := &complete.Command{
		Flags: predictFlags(root),
		Sub:   make(map[string]*complete.Command),
	}
	for _, e := range Commands {
		fs := flag.NewFlagSet(e.Command.Name(), flag.ContinueOnError)
		e.Command.SetFlags(fs)
		c.Sub[e.Command.Name()] = &complete.Command{Flags: predictFlags(fs)}
	}
	if topics, err := docs.All(); err == nil {
		c.Sub["topic"].Args = predict.Set(topics)
	}
	return c
}
