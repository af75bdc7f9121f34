package filter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/evmwatch/blockfilter/config"
	"github.com/evmwatch/blockfilter/model"
)

// Run evaluates one filter input document read from r. The decision channel w
// receives exactly one line, true or false, whatever happens; the returned
// error tells a determined false apart from a failed evaluation.
func Run(r io.Reader, w io.Writer) error {
	verdict, err := evaluateReader(r)
	decision := verdict != nil && verdict.Decision
	fmt.Fprintln(w, strconv.FormatBool(decision))
	return err
}

func evaluateReader(r io.Reader) (*model.Verdict, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		rerr := &InvalidInputError{Err: fmt.Errorf("read filter input is err: %v", err)}
		logrus.Errorf("no usable filter input: %v", rerr)
		return nil, rerr
	}
	input, err := DecodeInput(data)
	if err != nil {
		logrus.Errorf("no usable filter input: %v", err)
		return nil, err
	}
	return NewEvaluator(config.Conf.Filter.Verbose).Evaluate(input)
}
