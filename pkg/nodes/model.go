package nodes

import (
	"time"

	"github.com/weavegraph/weave/pkg/nodetype"
	"github.com/weavegraph/weave/pkg/paramtype"
)

// modelInvokeExecutor calls through to the host-supplied
// nodetype.ModelInvoker. It never imports a concrete AI/ML backend itself —
// the capability arrives opaquely via ExecutionContext.ModelInvoker. A
// workflow authored with a model_invoke node but run against a host that
// never registered an invoker fails with a descriptive error rather than a
// nil dereference.
type modelInvokeExecutor struct{}

func (modelInvokeExecutor) Execute(ec nodetype.ExecutionContext) nodetype.Result {
	invoker, ok := ec.ModelInvoker()
	if !ok {
		return nodetype.Failure(errNoModelInvoker())
	}
	promptValue, ok := ec.Input("prompt")
	if !ok {
		return nodetype.Failure(errMissingInput("prompt"))
	}
	prompt, ok := promptValue.Payload.(string)
	if !ok {
		return nodetype.Failure(errNotAString("prompt"))
	}

	params := map[string]paramtype.Value{}
	if p, ok := ec.Input("params"); ok {
		if m, ok := p.Payload.(map[string]any); ok {
			for k, v := range m {
				params[k] = paramtype.Value{Kind: paramtype.KindAny, Payload: v}
			}
		}
	}

	response, err := invokeWithRetry(ec, prompt, params, invoker)
	if err != nil {
		return nodetype.Failure(err)
	}
	return nodetype.Success(map[string]paramtype.Value{
		"response": {Kind: paramtype.KindString, Payload: response},
	})
}

// invokeWithRetry calls invoker.Invoke, retrying on failure up to the run's
// configured RetryPolicy attempt count with linearly increasing backoff
// (attempt N waits N*backoff). model_invoke is the only node kind that
// retries internally: it is the one kind whose work crosses into a
// host-supplied backend that can fail transiently, where math/template/etc.
// nodes would just reproduce the same deterministic failure on a retry. A
// context cancellation during a backoff wait aborts the retry loop
// immediately with the context's error.
func invokeWithRetry(ec nodetype.ExecutionContext, prompt string, params map[string]paramtype.Value, invoker nodetype.ModelInvoker) (string, error) {
	maxAttempts, backoff := ec.RetryPolicy()
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		response, err := invoker.Invoke(ec.Context(), prompt, params)
		if err == nil {
			return response, nil
		}
		lastErr = err

		if attempt == maxAttempts || backoff <= 0 {
			continue
		}
		timer := time.NewTimer(time.Duration(attempt) * backoff)
		select {
		case <-ec.Context().Done():
			timer.Stop()
			return "", ec.Context().Err()
		case <-timer.C:
		}
	}
	return "", lastErr
}

func modelInvokeDescriptor() nodetype.Descriptor {
	return nodetype.Descriptor{
		Kind: "model_invoke", Name: "Model Invoke", Category: nodetype.CategoryModel,
		Description: "Invokes a host-supplied AI model with a prompt and optional parameters.",
		Inputs: []nodetype.PortSpec{
			{Name: "prompt", Kind: paramtype.KindString, Required: true},
			{Name: "params", Kind: paramtype.KindJSON},
		},
		Outputs: []nodetype.PortSpec{{Name: "response", Kind: paramtype.KindString}},
	}
}

func registerModel(r *nodetype.Registry) {
	r.MustRegister(modelInvokeDescriptor(), func(string, map[string]paramtype.Value) (nodetype.Executor, error) {
		return modelInvokeExecutor{}, nil
	})
}
