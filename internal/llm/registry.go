package llm

import "fmt"

// ModelRoute binds a logical model name to a provider entry and the
// provider's physical model identifier, plus per-model generation defaults.
type ModelRoute struct {
	Name        string
	Provider    string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Registry maps logical model names onto providers. It is populated once at
// startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	providers    map[string]Provider
	routes       map[string]ModelRoute
	defaultRoute string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: map[string]Provider{},
		routes:    map[string]ModelRoute{},
	}
}

// RegisterProvider adds a provider implementation under a name.
func (r *Registry) RegisterProvider(name string, p Provider) {
	r.providers[name] = p
}

// RegisterModel adds a model route. The first registered model becomes the
// default until one is registered with isDefault set.
func (r *Registry) RegisterModel(name string, route ModelRoute, isDefault bool) {
	route.Name = name
	r.routes[name] = route
	if isDefault || r.defaultRoute == "" {
		r.defaultRoute = name
	}
}

// Resolve returns the provider and route for a logical model name; an empty
// name resolves to the default model.
func (r *Registry) Resolve(modelName string) (Provider, ModelRoute, error) {
	if modelName == "" {
		modelName = r.defaultRoute
	}

	route, ok := r.routes[modelName]
	if !ok {
		return nil, ModelRoute{}, fmt.Errorf("model %q not registered", modelName)
	}

	provider, ok := r.providers[route.Provider]
	if !ok {
		return nil, ModelRoute{}, fmt.Errorf("provider %q not registered for model %q", route.Provider, modelName)
	}

	return provider, route, nil
}
