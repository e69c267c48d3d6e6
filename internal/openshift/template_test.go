package openshift

import (
	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

func (s *OpenShiftTestSuite) TestSetTemplateParametersUpsert() {
	template := newTemplate("solver", []interface{}{
		parameterEntry("A", "1"),
		parameterEntry("B", "2"),
	})

	s.Require().NoError(SetTemplateParameters(template, Parameters{
		{Name: "B", Value: "3"},
		{Name: "C", Value: 4},
		{Name: "D", Value: nil},
	}))

	expected := []interface{}{
		parameterEntry("A", "1"),
		parameterEntry("B", "3"),
		parameterEntry("C", "4"),
		parameterEntry("D", ""),
	}

	if diff := cmp.Diff(expected, template.Object["parameters"]); diff != "" {
		s.Failf("unexpected parameters", "(-want +got):\n%s", diff)
	}
}

func (s *OpenShiftTestSuite) TestSetTemplateParametersIdempotent() {
	template := newTemplate("adviser", []interface{}{parameterEntry("A", "1")})
	params := Parameters{
		{Name: "A", Value: "x"},
		{Name: "Z", Value: 7},
	}

	s.Require().NoError(SetTemplateParameters(template, params))
	once := template.DeepCopy()
	s.Require().NoError(SetTemplateParameters(template, params))

	s.Equal(once.Object["parameters"], template.Object["parameters"])
	s.Len(template.Object["parameters"], 2)
}

func (s *OpenShiftTestSuite) TestSetTemplateParametersCreatesList() {
	template := newTemplate("package-extract", nil)

	s.Require().NoError(SetTemplateParameters(template, Parameters{{Name: "X", Value: "y"}}))
	s.Equal([]interface{}{parameterEntry("X", "y")}, template.Object["parameters"])

	empty := newTemplate("package-extract", nil)
	s.Require().NoError(SetTemplateParameters(empty, nil))
	s.Equal([]interface{}{}, empty.Object["parameters"])

	blank := &unstructured.Unstructured{}
	s.Require().NoError(SetTemplateParameters(blank, Parameters{{Name: "A", Value: "1"}}))
	s.Equal([]interface{}{parameterEntry("A", "1")}, blank.Object["parameters"])
}

func (s *OpenShiftTestSuite) TestSetTemplateParametersFirstMatchOnly() {
	template := newTemplate("solver", []interface{}{
		parameterEntry("A", "1"),
		parameterEntry("A", "2"),
	})

	s.Require().NoError(SetTemplateParameters(template, Parameters{{Name: "A", Value: "3"}}))
	s.Equal([]interface{}{
		parameterEntry("A", "3"),
		parameterEntry("A", "2"),
	}, template.Object["parameters"])
}

func (s *OpenShiftTestSuite) TestSetTemplateParametersInvalid() {
	template := &unstructured.Unstructured{Object: map[string]interface{}{
		"parameters": "nope",
	}}

	s.Error(SetTemplateParameters(template, Parameters{{Name: "A", Value: "1"}}))
}

func (s *OpenShiftTestSuite) TestParameterString() {
	seed := 42
	var missing *int

	for value, expected := range map[*Parameter]string{
		{Value: nil}:     "",
		{Value: missing}: "",
		{Value: &seed}:   "42",
		{Value: "text"}:  "text",
		{Value: 1}:       "1",
		{Value: false}:   "false",
		{Value: true}:    "true",
	} {
		s.Equal(expected, value.String())
	}
}

func (s *OpenShiftTestSuite) TestParametersFromMap() {
	params := ParametersFromMap(map[string]string{"B": "2", "A": "1", "C": "3"})

	s.Equal([]string{"A", "B", "C"}, params.Names())
	s.Equal("1", params[0].String())
}

func (s *OpenShiftTestSuite) TestSetEnvVar() {
	spec := &corev1.PodSpec{
		Containers: []corev1.Container{{
			Name: "graph-sync",
			Env: []corev1.EnvVar{
				{Name: "THOTH_LOG", Value: "INFO"},
				{Name: "THOTH_FORCE_SYNC", ValueFrom: &corev1.EnvVarSource{
					ConfigMapKeyRef: &corev1.ConfigMapKeySelector{Key: "force"},
				}},
			},
		}},
	}

	s.Require().NoError(setEnvVar(spec, Parameters{
		{Name: "THOTH_FORCE_SYNC", Value: 1},
		{Name: "THOTH_NEW", Value: "x"},
	}))

	s.Equal([]corev1.EnvVar{
		{Name: "THOTH_LOG", Value: "INFO"},
		{Name: "THOTH_FORCE_SYNC", Value: "1"},
		{Name: "THOTH_NEW", Value: "x"},
	}, spec.Containers[0].Env)

	s.Error(setEnvVar(&corev1.PodSpec{}, Parameters{{Name: "A"}}))
}

func (s *OpenShiftTestSuite) TestTemplateObjects() {
	template := newTemplate("solver", nil,
		newObject("v1", "Pod", "solver-a", "solver-a"),
		newObject("v1", "Pod", "solver-b", "solver-b"),
	)

	objects, err := templateObjects(template)
	s.Require().NoError(err)
	s.Require().Len(objects, 2)
	s.Equal("solver-b", objects[1].GetName())

	delete(template.Object, "objects")
	objects, err = templateObjects(template)
	s.NoError(err)
	s.Empty(objects)

	template.Object["objects"] = []interface{}{"nope"}
	_, err = templateObjects(template)
	s.Error(err)
}
