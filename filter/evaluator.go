package filter

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"

	"github.com/evmwatch/blockfilter/model"
	"github.com/evmwatch/blockfilter/utils"
)

const blockNumberField = "EVM.transaction.blockNumber"

// Evaluator decides whether one monitor match should be propagated.
// Verbosity is threaded through the evaluator instead of a package global so
// concurrent evaluations stay independent.
type Evaluator struct {
	Verbose bool
	Logger  *logrus.Logger

	policy BlockParityPolicy
}

func NewEvaluator(verbose bool) *Evaluator {
	return &Evaluator{Verbose: verbose, Logger: logrus.StandardLogger()}
}

func (e *Evaluator) logger() *logrus.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return logrus.StandardLogger()
}

// DecodeInput parses one filter input document.
func DecodeInput(data []byte) (*model.FilterInput, error) {
	input := model.FilterInput{}
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, &InvalidInputError{Err: fmt.Errorf("unmarshal filter input is err: %v", err)}
	}
	return &input, nil
}

// Evaluate runs the block parity decision for one monitor match. The verdict
// always carries a decision; a non-nil error means the decision is the
// conservative false, not a classification.
func (e *Evaluator) Evaluate(input *model.FilterInput) (*model.Verdict, error) {
	verdict := &model.Verdict{}
	verbose := e.scanArgs(input.Args)
	if verbose {
		e.logger().Info("verbose diagnostics enabled")
	}

	tx, err := extractTransaction(input.MonitorMatch)
	if err != nil {
		e.logger().Errorf("no usable monitor match: %v", err)
		return verdict, err
	}
	if verbose && tx.Hash != "" {
		e.logger().Infof("evaluating transaction %s", tx.Hash)
	}

	raw := tx.BlockNumber
	if raw == "" {
		ferr := &MissingFieldError{Field: blockNumberField}
		e.logger().Errorf("monitor match is not evaluable: %v", ferr)
		return verdict, ferr
	}

	blockNumber, perr := utils.ParseHexBig(utils.NormalizeHex(raw))
	if perr != nil {
		cerr := &ConversionError{Value: raw, Err: perr}
		e.logger().Errorf("block number is not hexadecimal: %v", cerr)
		return verdict, cerr
	}

	verdict.BlockNumber = blockNumber
	verdict.BlockNumberHex = hexutil.EncodeBig(blockNumber)
	verdict.Decision = e.policy.Allow(blockNumber)
	if verbose {
		e.logger().Infof("block number hex value: %s (raw %q)", verdict.BlockNumberHex, raw)
		e.logger().Infof("block number decimal value: %s", blockNumber)
		e.logger().Infof("block number %s is %s", blockNumber, classification(verdict.Decision))
	}
	return verdict, nil
}

func classification(even bool) string {
	if even {
		return "even"
	}
	return "odd"
}

func extractTransaction(match *model.MonitorMatch) (*model.EVMTransaction, error) {
	if match == nil {
		return nil, &InvalidInputError{Err: fmt.Errorf("monitor_match is missing")}
	}
	if match.EVM == nil {
		return nil, &InvalidInputError{Err: fmt.Errorf("monitor_match has no EVM payload")}
	}
	return &match.EVM.Transaction, nil
}
