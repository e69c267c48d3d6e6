package openshift

import (
	"net"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/pkg/log"
	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/discovery/cached/memory"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/restmapper"
	"k8s.io/client-go/tools/clientcmd"
)

const (
	serviceAccountTokenFile = "/var/run/secrets/kubernetes.io/serviceaccount/token"
	serviceAccountCAFile    = "/var/run/secrets/kubernetes.io/serviceaccount/ca.crt"
)

// Client talks to the OpenShift master on behalf of Thoth
// components: it resolves templates, processes them and
// creates the resulting objects in the configured namespaces.
type Client struct {
	cfg       Config
	inCluster bool
	restCfg   *rest.Config

	kube    kubernetes.Interface
	dynamic dynamic.Interface
	mapper  meta.RESTMapper
	raw     rest.Interface

	tokenMu sync.Mutex
	token   string
}

// Clients groups the API clients a Client delegates to.
type Clients struct {
	// Kubernetes serves core and batch resources, including pod logs.
	Kubernetes kubernetes.Interface
	// Dynamic serves templates and objects produced by template processing.
	Dynamic dynamic.Interface
	// Mapper resolves the resource of an object from its kind.
	Mapper meta.RESTMapper
	// REST serves the fixed OpenShift endpoints (processed templates, builds).
	REST rest.Interface
}

// New creates a Client. The in-cluster service account setup is
// tried first; when that is not available the local kubeconfig is
// used instead.
func New(cfg Config) (*Client, error) {
	restCfg, inCluster, err := loadRESTConfig(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Token != "" {
		restCfg.BearerToken = cfg.Token
		restCfg.BearerTokenFile = ""
	}

	if !cfg.VerifyTLS {
		restCfg.TLSClientConfig.Insecure = true
		restCfg.TLSClientConfig.CAFile = ""
		restCfg.TLSClientConfig.CAData = nil
	}

	kubeCfg := rest.CopyConfig(restCfg)
	if cfg.KubernetesAPIURL != "" {
		kubeCfg.Host = cfg.KubernetesAPIURL
	}

	ocpCfg := rest.CopyConfig(restCfg)
	if cfg.OpenShiftAPIURL != "" {
		ocpCfg.Host = cfg.OpenShiftAPIURL
	}

	kube, err := kubernetes.NewForConfig(kubeCfg)
	if err != nil {
		return nil, errors.Wrap(err, "create kubernetes client")
	}

	dyn, err := dynamic.NewForConfig(ocpCfg)
	if err != nil {
		return nil, errors.Wrap(err, "create dynamic client")
	}

	disc, err := discovery.NewDiscoveryClientForConfig(ocpCfg)
	if err != nil {
		return nil, errors.Wrap(err, "create discovery client")
	}

	rawCfg := rest.CopyConfig(ocpCfg)
	rawCfg.NegotiatedSerializer = scheme.Codecs.WithoutConversion()
	raw, err := rest.UnversionedRESTClientFor(rawCfg)
	if err != nil {
		return nil, errors.Wrap(err, "create openshift rest client")
	}

	c := NewWithClients(cfg, Clients{
		Kubernetes: kube,
		Dynamic:    dyn,
		Mapper:     restmapper.NewDeferredDiscoveryRESTMapper(memory.NewMemCacheClient(disc)),
		REST:       raw,
	})
	c.inCluster = inCluster
	c.restCfg = restCfg

	return c, nil
}

// NewWithClients constructs a Client on top of pre-built API
// clients (primarily for tests).
func NewWithClients(cfg Config, clients Clients) *Client {
	return &Client{
		cfg:     cfg,
		kube:    clients.Kubernetes,
		dynamic: clients.Dynamic,
		mapper:  clients.Mapper,
		raw:     clients.REST,
	}
}

// Config returns the configuration the Client was created with.
func (c *Client) Config() Config {
	return c.cfg
}

// InCluster reports whether the Client authenticates with the
// service account mounted into the pod.
func (c *Client) InCluster() bool {
	return c.inCluster
}

// Token returns the bearer token used to talk to the master. It is
// resolved on first use and cached afterwards.
func (c *Client) Token() (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	token, err := c.resolveToken()
	if err != nil {
		return "", err
	}

	c.token = token
	return token, nil
}

func (c *Client) resolveToken() (string, error) {
	if c.cfg.Token != "" {
		return c.cfg.Token, nil
	}

	if c.inCluster {
		return readToken(firstNonEmpty(c.cfg.TokenFile, serviceAccountTokenFile))
	}

	if c.restCfg != nil {
		if c.restCfg.BearerToken != "" {
			return c.restCfg.BearerToken, nil
		}
		if c.restCfg.BearerTokenFile != "" {
			return readToken(c.restCfg.BearerTokenFile)
		}
	}

	return "", errors.Wrap(ErrConfiguration, "no bearer token available in the local configuration")
}

func readToken(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read service account token %s", path)
	}

	token := strings.TrimSpace(string(buf))
	if token == "" {
		return "", errors.Wrapf(ErrConfiguration, "service account token %s is empty", path)
	}

	return token, nil
}

func loadRESTConfig(cfg Config) (*rest.Config, bool, error) {
	if strings.TrimSpace(cfg.Kubeconfig) != "" {
		restCfg, err := clientcmd.BuildConfigFromFlags("", cfg.Kubeconfig)
		if err != nil {
			return nil, false, errors.Wrapf(err, "load kubeconfig %s", cfg.Kubeconfig)
		}
		return restCfg, false, nil
	}

	restCfg, err := inClusterConfig(cfg.TokenFile, cfg.CertFile)
	if err == nil {
		return restCfg, true, nil
	}

	log.Warn("failed to load in cluster configuration, falling back to a local development setup", "error", err)

	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	restCfg, err = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{}).ClientConfig()
	if err != nil {
		return nil, false, errors.Wrap(err, "load local kubernetes configuration")
	}

	return restCfg, false, nil
}

// inClusterConfig mirrors rest.InClusterConfig but allows the token
// and CA locations to be overridden.
func inClusterConfig(tokenFile, certFile string) (*rest.Config, error) {
	host, port := os.Getenv("KUBERNETES_SERVICE_HOST"), os.Getenv("KUBERNETES_SERVICE_PORT")
	if host == "" || port == "" {
		return nil, rest.ErrNotInCluster
	}

	tokenFile = firstNonEmpty(tokenFile, serviceAccountTokenFile)
	certFile = firstNonEmpty(certFile, serviceAccountCAFile)

	token, err := readToken(tokenFile)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(certFile); err != nil {
		return nil, errors.Wrapf(err, "stat service account CA %s", certFile)
	}

	return &rest.Config{
		Host:            "https://" + net.JoinHostPort(host, port),
		BearerToken:     token,
		BearerTokenFile: tokenFile,
		TLSClientConfig: rest.TLSClientConfig{CAFile: certFile},
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
