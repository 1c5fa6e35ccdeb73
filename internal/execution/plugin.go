package execution

import "fmt"

// SetInitializingPlugin marks the plugin currently running its
// initialization, or clears the slot when name is "". At most one plugin
// may hold the slot at a time; claiming it while a different plugin is
// active is a contract violation and panics. Re-setting the same plugin is
// a no-op.
func (e *Execution) SetInitializingPlugin(name string) {
	if name != "" && e.initializingPlugin != "" && e.initializingPlugin != name {
		panic(&ContractViolation{
			Unit: fmt.Sprintf("plugin %s", name),
			Detail: fmt.Sprintf("tried to start initializing while plugin %q is still initializing",
				e.initializingPlugin),
		})
	}
	e.initializingPlugin = name
}

// InitializingPlugin returns the plugin currently initializing, or "".
func (e *Execution) InitializingPlugin() string {
	return e.initializingPlugin
}

// PutPluginParam stores one parameter value for a plugin. Parameters are
// scoped per plugin so that plugins cannot collide with each other or with
// the context's free-form assigns.
func (e *Execution) PutPluginParam(plugin, param string, value any) {
	params, ok := e.pluginParams[plugin]
	if !ok {
		params = make(map[string]any)
		e.pluginParams[plugin] = params
	}
	params[param] = value
}

// GetPluginParam returns a plugin parameter and whether it exists.
func (e *Execution) GetPluginParam(plugin, param string) (any, bool) {
	params, ok := e.pluginParams[plugin]
	if !ok {
		return nil, false
	}
	v, ok := params[param]
	return v, ok
}
