package openshift

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/pkg/log"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Parameter assigns a value to a named template parameter or
// container environment variable. A nil value is rendered as
// an empty string; anything else is formatted with fmt, so booleans
// read "true" and "false". Templates expecting 1 and 0 get flag().
type Parameter struct {
	Name  string
	Value interface{}
}

// Parameters is an ordered list of assignments. Names that are
// not yet present in the target are appended in this order.
type Parameters []Parameter

// ParametersFromMap converts a map into Parameters ordered by name.
func ParametersFromMap(m map[string]string) Parameters {
	params := make(Parameters, 0, len(m))
	for name, value := range m {
		params = append(params, Parameter{Name: name, Value: value})
	}

	sort.Slice(params, func(i, j int) bool {
		return params[i].Name < params[j].Name
	})

	return params
}

// Names returns the parameter names in order.
func (p Parameters) Names() []string {
	names := make([]string, len(p))
	for i, param := range p {
		names[i] = param.Name
	}
	return names
}

// String renders the value the way it is stored in a template.
func (p Parameter) String() string {
	return stringValue(p.Value)
}

func stringValue(v interface{}) string {
	if v == nil {
		return ""
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}

	if s, ok := rv.Interface().(string); ok {
		return s
	}

	return fmt.Sprint(rv.Interface())
}

// flag renders a boolean the way Thoth templates expect it.
func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SetTemplateParameters sets parameters in the template: entries
// with a matching name get their value replaced, unknown names are
// appended to the template's parameter list. No entry is removed.
func SetTemplateParameters(template *unstructured.Unstructured, params Parameters) error {
	log.Debug("setting template parameters", "template", template.GetName(), "parameters", params.Names())

	if template.Object == nil {
		template.Object = map[string]interface{}{}
	}

	var entries []interface{}
	if raw, ok := template.Object["parameters"]; ok && raw != nil {
		if entries, ok = raw.([]interface{}); !ok {
			return errors.Errorf("parameters of template %q are %T, not a list", template.GetName(), raw)
		}
	}

	for _, param := range params {
		value := param.String()

		found := false
		for _, e := range entries {
			entry, ok := e.(map[string]interface{})
			if !ok {
				continue
			}
			if name, _ := entry["name"].(string); name == param.Name {
				entry["value"] = value
				found = true
				break
			}
		}

		if !found {
			log.Warn(
				"template does not provide the requested parameter, forcing",
				"template", template.GetName(),
				"parameter", param.Name,
			)
			entries = append(entries, map[string]interface{}{
				"name":  param.Name,
				"value": value,
			})
		}
	}

	if entries == nil {
		entries = []interface{}{}
	}
	template.Object["parameters"] = entries

	return nil
}

// setEnvVar upserts environment variables of the first container in
// the pod spec.
func setEnvVar(spec *corev1.PodSpec, params Parameters) error {
	if len(spec.Containers) == 0 {
		return errors.New("pod spec has no containers to set environment on")
	}

	container := &spec.Containers[0]
	for _, param := range params {
		value := param.String()

		found := false
		for i := range container.Env {
			if container.Env[i].Name == param.Name {
				container.Env[i].Value = value
				container.Env[i].ValueFrom = nil
				found = true
				break
			}
		}

		if !found {
			container.Env = append(container.Env, corev1.EnvVar{Name: param.Name, Value: value})
		}
	}

	return nil
}

// templateObjects returns the objects listed in a (processed) template.
func templateObjects(template *unstructured.Unstructured) ([]*unstructured.Unstructured, error) {
	raw, ok := template.Object["objects"]
	if !ok || raw == nil {
		return nil, nil
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, errors.Errorf("objects of template %q are %T, not a list", template.GetName(), raw)
	}

	objects := make([]*unstructured.Unstructured, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, errors.Errorf("object %d of template %q is %T, not an object", i, template.GetName(), item)
		}
		objects = append(objects, &unstructured.Unstructured{Object: obj})
	}

	return objects, nil
}
