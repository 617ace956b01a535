// Package batch evaluates a list of pipe segments in one call, e.g. a
// whole inspection circuit. Evaluation is stateless, so items are
// independent; the first faulty item aborts the batch.
package batch

import (
	"fmt"

	governance "Gauge/internal/calc/governance"
)

type Input struct {
	Items []governance.Input `json:"items"`
}

type Result struct {
	Results []governance.Result `json:"results"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]governance.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := governance.Evaluate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
