package beatmap

import (
	"encoding/json"
	"fmt"
	"os"
)

type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	chart, err := Decode(data)
	if nil != err {
		return nil, fmt.Errorf("%v: %w", file, err)
	}
	return chart, nil
}

// Decode parses and validates chart JSON.
func Decode(data []byte) (*Chart, error) {
	var chart Chart
	if err := json.Unmarshal(data, &chart); nil != err {
		return nil, err
	}
	if err := chart.Validate(); nil != err {
		return nil, err
	}
	return &chart, nil
}
