package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan appends the context span to err, so a reported error can be matched with its log lines.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
