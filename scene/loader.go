package scene

import (
	"fmt"
	"sync"
)

// BuildFunc constructs a model's node tree
type BuildFunc func() *Node

// Loader builds models asynchronously and caches them for the process
// lifetime. A model is built at most once; repeated loads share the cached
// tree (the preload-before-first-use contract of the original asset source).
type Loader struct {
	mu       sync.Mutex
	builders map[string]BuildFunc
	models   map[string]*Node
	done     map[string]chan struct{}
}

// NewLoader creates a loader with the built-in model catalog
func NewLoader() *Loader {
	return &Loader{
		builders: map[string]BuildFunc{
			ModelPrizeWheel: BuildWheelModel,
		},
		models: make(map[string]*Node),
		done:   make(map[string]chan struct{}),
	}
}

// Load starts an asynchronous build on first call and returns a channel
// closed when the model is ready. Subsequent calls return the same channel.
// Consumers must tolerate Get returning nothing until the channel closes.
func (l *Loader) Load(name string) (<-chan struct{}, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ch, ok := l.done[name]; ok {
		return ch, nil
	}

	build, ok := l.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown model %q", name)
	}

	ch := make(chan struct{})
	l.done[name] = ch

	go func() {
		root := build()
		l.mu.Lock()
		l.models[name] = root
		l.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

// Get returns the loaded model root, or false while the build is still in
// flight (or was never requested)
func (l *Loader) Get(name string) (*Node, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	n, ok := l.models[name]
	return n, ok
}
