package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

// schema constrains CUE definitions before they reach the constructors.
const schema = `
#Exponential: {
	kind:   "exponential" | "exp"
	rate?:  number & >0
	mean?:  number & >0
	stdev?: number & >0
}

#Normal: {
	kind:  "normal" | "gaussian"
	mean:  number
	stdev: number & >0
}

#Uniform: {
	kind: "uniform"
	min:  number
	max:  number & >min
}

distributions: [string]: #Exponential | #Normal | #Uniform
`

// CompileCUE evaluates CUE source against the built-in schema and returns
// one Definition per field of the top-level distributions struct, in
// declaration order. Each definition is named after its field label.
func CompileCUE(src string) ([]Definition, error) {
	ctx := cuecontext.New()

	schemaVal := ctx.CompileString(schema, cue.Filename("schema.cue"))
	if err := schemaVal.Err(); err != nil {
		return nil, fmt.Errorf("compiling built-in schema: %w", err)
	}

	userVal := ctx.CompileString(src, cue.Filename("distributions.cue"))
	if err := userVal.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	// The schema's pattern makes distributions exist after unification,
	// so presence is checked on the user value.
	if !userVal.LookupPath(cue.ParsePath("distributions")).Exists() {
		return nil, &ConfigError{
			Field:   "distributions",
			Message: "distributions is required",
			Pos:     userVal.Pos(),
		}
	}

	v := schemaVal.Unify(userVal)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	distsVal := v.LookupPath(cue.ParsePath("distributions"))

	iter, err := distsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var defs []Definition
	for iter.Next() {
		var def Definition
		if err := iter.Value().Decode(&def); err != nil {
			return nil, formatCUEError(err)
		}
		def.Name = iter.Label()
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, &ConfigError{
			Field:   "distributions",
			Message: "at least one distribution is required",
			Pos:     distsVal.Pos(),
		}
	}
	return defs, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	positions := errors.Positions(first)
	if len(positions) > 0 {
		return &ConfigError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
