package impl

import (
	"github.com/curio-lang/curio-evaluator/eval"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/semver/semver"
)

type (
	// Bindable is a host object that wants a reference back to the scope
	// created for it.
	Bindable interface {
		eval.HostObject

		// BindScope hands the object the scope that represents it. Called
		// before SetupConfig.
		BindScope(s eval.Scope)
	}

	// TypeBase is a convenience embedding for host object types. It stores
	// the configuration scope and an activation flag that hosts typically
	// link as a member variable.
	TypeBase struct {
		scope  eval.Scope
		active bool
	}

	// TypeInfo describes one registered host type. VersionString preserves
	// the text the version was registered with.
	TypeInfo struct {
		Name          string
		Desc          string
		Version       semver.Version
		VersionString string
	}

	// TypeRegistry maps the type names a script may declare to host type
	// descriptions. A host registers its types once and then asks the
	// registry to materialize object scopes for declarations.
	TypeRegistry struct {
		logger eval.Logger
		types  map[string]*TypeInfo
		order  []string
	}
)

func (t *TypeBase) BindScope(s eval.Scope) {
	t.scope = s
}

// ConfigScope returns the scope bound to this object, or nil before binding.
func (t *TypeBase) ConfigScope() eval.Scope {
	return t.scope
}

// SetupConfig declares nothing. Host types override it to declare their
// member symbols.
func (t *TypeBase) SetupConfig() error {
	return nil
}

func (t *TypeBase) Active() bool {
	return t.active
}

func (t *TypeBase) SetActive(active bool) {
	t.active = active
}

// LinkActive declares an `active` member in the bound scope, backed by the
// activation flag.
func (t *TypeBase) LinkActive(desc string) error {
	s, ok := t.scope.(*SymbolScope)
	if !ok {
		return eval.Error(eval.NotWritable, issue.H{`name`: `active`})
	}
	_, err := LinkFuns(s, `active`,
		func() bool { return t.active },
		func(v bool) { t.active = v },
		desc, false)
	return err
}

func NewTypeRegistry(logger eval.Logger) *TypeRegistry {
	return &TypeRegistry{logger: logger, types: map[string]*TypeInfo{}}
}

// Register records a host type under name. The version string must parse as
// semantic versioning. Registering the same name twice with different
// versions is a reported error; an exact re-registration is ignored.
func (r *TypeRegistry) Register(name, desc, version string) (*TypeInfo, error) {
	v, err := semver.ParseVersion(version)
	if err != nil {
		return nil, eval.Error(eval.TypeVersionMismatch, issue.H{`name`: name, `detail`: err.Error()})
	}
	if prior, ok := r.types[name]; ok {
		if prior.Version.Equals(v) {
			return prior, nil
		}
		return nil, eval.Error(eval.DuplicateType, issue.H{`name`: name})
	}
	ti := &TypeInfo{Name: name, Desc: desc, Version: v, VersionString: version}
	r.types[name] = ti
	r.order = append(r.order, name)
	r.logger.Logf(eval.DEBUG, `registered type %s %s`, name, version)
	return ti, nil
}

// RequireRange verifies that the registered type name satisfies the given
// semantic version range.
func (r *TypeRegistry) RequireRange(name, rangeStr string) error {
	ti, ok := r.types[name]
	if !ok {
		return eval.Error(eval.UnknownType, issue.H{`name`: name})
	}
	vr, err := semver.ParseVersionRange(rangeStr)
	if err != nil {
		return eval.Error(eval.TypeVersionMismatch, issue.H{`name`: name, `detail`: err.Error()})
	}
	if !vr.Includes(ti.Version) {
		return eval.Error(eval.TypeVersionMismatch, issue.H{
			`name`: name, `detail`: `version ` + ti.VersionString + ` is outside of range ` + rangeStr})
	}
	return nil
}

// Info returns the registration of name, or nil.
func (r *TypeRegistry) Info(name string) *TypeInfo {
	return r.types[name]
}

// Names returns the registered type names in registration order.
func (r *TypeRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// NewObjectScope materializes a scope in parent for a declaration of the
// registered type typeName, binds obj to it, and runs the object's member
// declaration. Declaring an unregistered type is a reported error.
func (r *TypeRegistry) NewObjectScope(parent *SymbolScope, typeName, objName, desc string, obj Bindable, ownership eval.Ownership) (*SymbolScope, error) {
	if _, ok := r.types[typeName]; !ok {
		return nil, eval.Error(eval.UnknownType, issue.H{`name`: typeName})
	}
	s, err := parent.AddObjectScope(objName, desc, typeName, obj, ownership)
	if err != nil {
		return nil, err
	}
	obj.BindScope(s)
	if err = obj.SetupConfig(); err != nil {
		return nil, err
	}
	r.logger.Logf(eval.DEBUG, `declared %s '%s' in scope '%s'`, typeName, objName, parent.Name())
	return s, nil
}
