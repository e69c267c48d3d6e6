// Package cli holds helpers shared by the thoth-ocp commands.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/thoth-station/thoth-ocp/internal/openshift"
	"github.com/thoth-station/thoth-ocp/pkg/env"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by the --output flag.
const (
	JSON = "json"
	YAML = "yaml"
)

// NewClient connects to the cluster configured in the environment.
var NewClient = func() (*openshift.Client, error) {
	return openshift.New(openshift.ConfigFromEnvironment(env.Variables()))
}

// AddOutputFlag registers the --output flag on the command.
func AddOutputFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "output", "o", YAML, "Output format (yaml or json)")
}

// Write prints the value in the requested format. Values are encoded
// through their JSON representation so both formats share field names.
func Write(cmd *cobra.Command, format string, v interface{}) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode output")
	}

	switch format {
	case JSON:
		var out bytes.Buffer
		if err := json.Indent(&out, buf, "", "  "); err != nil {
			return errors.Wrap(err, "indent output")
		}
		out.WriteByte('\n')
		buf = out.Bytes()
	case YAML:
		var doc interface{}
		if err := json.Unmarshal(buf, &doc); err != nil {
			return errors.Wrap(err, "decode output")
		}
		if buf, err = yaml.Marshal(doc); err != nil {
			return errors.Wrap(err, "encode output as yaml")
		}
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	if _, err := cmd.OutOrStdout().Write(buf); err != nil {
		cmd.PrintErrf("write output: %v\n", err)
		return err
	}

	return nil
}
