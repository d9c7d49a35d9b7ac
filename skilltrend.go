// Package skilltrend generates a synthetic dataset of IT job-posting counts
// and derives dashboard views from it.
//
// Usage:
//
//	import (
//	    "github.com/spektr-org/skilltrend/engine"
//	    "github.com/spektr-org/skilltrend/generator"
//	)
//
//	records := generator.New(nil, generator.NewRand(42), nil).Generate()
//	dash := engine.Build(records, engine.Query{Region: "TR", Category: "all"})
//
// The generator enumerates the catalog once per region and year. The engine
// recomputes every view from the full record set on each call and never
// touches the network or the filesystem; persistence lives in the snapshot
// package.
package skilltrend
