package cmd

import (
	"maps"

	"github.com/etnz/rsu"
	"github.com/etnz/rsu/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	log "github.com/sirupsen/logrus"
)

// Completion returns the shell completion of the vest command line.
func Completion() *complete.Command {
	var symbols predict.Set
	for _, c := range rsu.Companies {
		symbols = append(symbols, c.Symbol)
	}
	var frequencies predict.Set
	for _, f := range rsu.Frequencies {
		frequencies = append(frequencies, string(f)+":")
	}
	topics, err := docs.GetAllTopics()
	if err != nil {
		log.WithError(err).Debug("no topic completion")
	}

	id := map[string]complete.Predictor{"id": predict.Something}
	grant := map[string]complete.Predictor{
		"s":       symbols,
		"company": predict.Something,
		"d":       predict.Something,
		"n":       predict.Something,
		"p":       predict.Something,
		"plan":    frequencies,
	}
	update := map[string]complete.Predictor{"id": predict.Something}
	maps.Copy(update, grant)

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
			"raw":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add":       {Flags: grant},
			"update":    {Flags: update},
			"delete":    {Flags: id},
			"plan":      {Args: frequencies},
			"portfolio": {},
			"show":      {Flags: map[string]complete.Predictor{"id": predict.Something, "n": predict.Something}},
			"calendar":  {Flags: map[string]complete.Predictor{"id": predict.Something, "from": predict.Something, "to": predict.Something}},
			"prices":    {},
			"topic":     {Args: predict.Set(append(topics, "readme")), Flags: map[string]complete.Predictor{"l": predict.Nothing}},
		},
	}
}

// Complete runs the shell completion if the program was invoked by the shell
// to complete a command line, and exits then. Otherwise it does nothing.
//
// Run "COMP_INSTALL=1 vest" to install the completion.
func Complete(name string) {
	Completion().Complete(name)
}
