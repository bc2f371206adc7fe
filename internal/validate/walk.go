package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dembrandt/dtcg-validator/internal/diag"
	"github.com/dembrandt/dtcg-validator/internal/dtcg"
	"github.com/dembrandt/dtcg-validator/internal/registry"
)

// forbiddenNameChars are never allowed in token or group keys: braces collide
// with reference syntax, the period with dotted paths, the quote with
// serialized messages.
const forbiddenNameChars = `{}."`

type walker struct {
	reg *registry.Registry
	bag *diag.Bag
}

// walkNode visits one node. A node with $value is a token; a node with a
// $type but neither $value nor children is malformed; everything else is a
// group. The walk never stops early, every subtree is visited so one run
// reports all problems.
func (w *walker) walkNode(node *dtcg.Object, path, ambientType string) {
	if dtcg.IsToken(node) {
		w.validateToken(node, path, ambientType)
		return
	}

	children := dtcg.ChildNames(node)
	if len(children) == 0 && node.Has(dtcg.KeyType) {
		w.bag.Error(diag.StructMissingValue, path,
			fmt.Sprintf("Token '%s' is missing a $value", path))
		return
	}

	if own, ok := node.GetString(dtcg.KeyType); ok {
		ambientType = own
	}
	for _, name := range children {
		childPath := dtcg.JoinPath(path, name)
		w.checkName(name, childPath)
		child, _ := node.Get(name)
		obj, isObj := child.(*dtcg.Object)
		if !isObj {
			w.bag.Error(diag.StructMissingValue, childPath,
				fmt.Sprintf("Token '%s' must be an object carrying a $value", childPath))
			continue
		}
		w.walkNode(obj, childPath, ambientType)
	}
}

func (w *walker) checkName(name, path string) {
	if strings.ContainsAny(name, forbiddenNameChars) {
		w.bag.Error(diag.NameInvalidChar, path,
			fmt.Sprintf("Token name '%s' must not contain '{', '}', '.', or '\"'", name))
	}
}

func (w *walker) validateToken(node *dtcg.Object, path, ambientType string) {
	value, _ := node.Get(dtcg.KeyValue)
	ownType, _ := node.GetString(dtcg.KeyType)

	effType := ownType
	if effType == "" {
		effType = ambientType
	}

	if dtcg.IsReference(value) {
		ref := dtcg.ReferencePath(value.(string))
		res, err := registry.Resolve(ref, w.reg, nil)
		if err != nil {
			w.reportResolveError(path, err)
			return
		}
		value = res.Value
		// Own $type wins over the resolved type, which wins over the
		// ambient group type.
		if ownType == "" && res.Type != "" {
			effType = res.Type
		}
	}

	if effType == "" {
		w.bag.Error(diag.TypeUndeterminable, path,
			fmt.Sprintf("Token '%s' has no $type and none could be inherited from a group or reference", path))
		return
	}
	if !dtcg.KnownType(effType) {
		w.bag.Warn(diag.TypeUnknown, path,
			fmt.Sprintf("Token '%s' has unknown $type '%s', skipping value validation", path, effType))
		return
	}
	valueValidators[effType](value, path, w.bag)
}

func (w *walker) reportResolveError(path string, err error) {
	code := diag.RefMissing
	var cycle *registry.CycleError
	if errors.As(err, &cycle) {
		code = diag.RefCycle
	}
	w.bag.Error(code, path, fmt.Sprintf("Token '%s': %v", path, err))
}
