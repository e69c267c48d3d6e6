package process

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/thoth-station/thoth-ocp/cmd/cli"
	"github.com/thoth-station/thoth-ocp/internal/openshift"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

var (
	file       string
	selector   string
	namespace  string
	parameters []string
	create     bool
	output     string
)

// Cmd processes a template server side.
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Process a template and optionally create the resulting objects",
	Example: `thoth-ocp process -f solver.yaml -n thoth-middletier -p THOTH_SOLVER_PACKAGES=flask
thoth-ocp process -l template=adviser -n thoth-backend --create`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (file == "") == (selector == "") {
			return errors.New("exactly one of --file and --selector is required")
		}

		params, err := parseParameters(parameters)
		if err != nil {
			return err
		}

		client, err := cli.NewClient()
		if err != nil {
			return err
		}

		var template *unstructured.Unstructured
		if file != "" {
			template, err = readTemplate(file)
		} else {
			template, err = client.GetTemplate(cmd.Context(), selector)
		}
		if err != nil {
			return err
		}

		if err := openshift.SetTemplateParameters(template, params); err != nil {
			return err
		}

		processed, err := client.ProcessTemplate(cmd.Context(), namespace, template)
		if err != nil {
			return err
		}

		if !create {
			return cli.Write(cmd, output, processed.Object)
		}

		objects, _, err := unstructured.NestedSlice(processed.Object, "objects")
		if err != nil {
			return errors.Wrap(err, "read processed objects")
		}

		var created []string
		for _, o := range objects {
			obj, ok := o.(map[string]interface{})
			if !ok {
				return errors.Errorf("processed template contains %T, not an object", o)
			}

			c, err := client.CreateObject(cmd.Context(), namespace, &unstructured.Unstructured{Object: obj})
			if err != nil {
				return err
			}
			created = append(created, c.GetKind()+"/"+c.GetName())
		}

		return cli.Write(cmd, output, created)
	},
}

func init() {
	Cmd.Flags().StringVarP(&file, "file", "f", "", "Template file (YAML or JSON)")
	Cmd.Flags().StringVarP(&selector, "selector", "l", "", "Label selector of a template in the infra namespace")
	Cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Namespace to process the template in")
	Cmd.Flags().StringArrayVarP(&parameters, "param", "p", nil, "Template parameter as NAME=VALUE (repeatable)")
	Cmd.Flags().BoolVar(&create, "create", false, "Create the processed objects in the namespace")
	cli.AddOutputFlag(Cmd, &output)
	_ = Cmd.MarkFlagRequired("namespace")
}

// parseParameters turns NAME=VALUE pairs into template parameters,
// keeping their order.
func parseParameters(pairs []string) (openshift.Parameters, error) {
	params := make(openshift.Parameters, 0, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, errors.Errorf("invalid parameter %q, expected NAME=VALUE", pair)
		}
		params = append(params, openshift.Parameter{Name: name, Value: value})
	}
	return params, nil
}

// readTemplate loads a template from a YAML (or JSON) file.
func readTemplate(path string) (*unstructured.Unstructured, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read template %s", path)
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode template %s", path)
	}

	// round trip through JSON so numbers and maps take the types
	// unstructured objects require
	buf, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "encode template %s", path)
	}

	template := &unstructured.Unstructured{}
	if err := template.UnmarshalJSON(buf); err != nil {
		return nil, errors.Wrapf(err, "decode template %s", path)
	}

	if template.GetKind() != "Template" {
		return nil, errors.Errorf("%s holds a %s, not a Template", path, template.GetKind())
	}

	return template, nil
}
