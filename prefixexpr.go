// Package prefixexpr reads parenthesized prefix expressions such as
// "(+ 100 (+ 300 400))" and turns them into a forest of tree nodes.
package prefixexpr

import (
	"bytes"
	"io"
	"runtime"
	"sync"

	"github.com/xiam/prefix-expr/ast"
	"github.com/xiam/prefix-expr/parser"
)

// Reader parses the whole content of an io.Reader.
type Reader struct {
	r io.Reader
	p *parser.Parser
}

// Parse parses in with default options.
func Parse(in []byte) (ast.Forest, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Parse()
}

// ParseString is like Parse but takes a string.
func ParseString(in string) (ast.Forest, error) {
	return Parse([]byte(in))
}

// NewReader creates a Reader with default options.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r: r,
		p: parser.New(parser.Options{}),
	}
}

// SetOptions replaces the parser options of the reader.
func (r *Reader) SetOptions(opts parser.Options) {
	r.p.SetOptions(opts)
}

// Parse reads until EOF and parses what was read.
func (r *Reader) Parse() (ast.Forest, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return r.p.Parse(in)
}

// Result holds the outcome of parsing one of the inputs given to ParseAll.
type Result struct {
	Input  string
	Forest ast.Forest
	Err    error
}

// ParseAll parses every input on its own, spreading the work over as many
// goroutines as there are CPUs. Results keep the order of inputs.
func ParseAll(inputs []string, opts parser.Options) []Result {
	p := parser.New(opts)
	results := make([]Result, len(inputs))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(inputs) {
		workers = len(inputs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				forest, err := p.Parse([]byte(inputs[i]))
				results[i] = Result{Input: inputs[i], Forest: forest, Err: err}
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}
