// Package mocks provides shared mock implementations for tests.
//
// Mocks use function fields so each test sets only the behavior it needs:
//
//	gen := &mocks.MockGenerator{
//	    GenerateQuestionFn: func(ctx context.Context, s domain.Subject, nonCalc bool) (*domain.Question, error) {
//	        return nil, generation.ErrTransportFailure
//	    },
//	}
//
// Unset function fields fall back to the mock's default response values.
package mocks
