package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// unset is the default of optional settings.
const unset = "-"

// VaultOptions locate a KV v2 secret holding configuration keys.
type VaultOptions struct {
	Address string // e.g. "http://localhost:8200"
	Token   string
	Mount   string // KV engine mount, e.g. "secret"
	Path    string // secret path inside the mount, e.g. "teamgo"
	// HTTPClient replaces the Vault default client when set.
	HTTPClient *http.Client
}

func (o VaultOptions) validate() error {
	var errs []error
	if o.Address == "" {
		errs = append(errs, errors.New("vault address is required"))
	}
	if o.Token == "" {
		errs = append(errs, errors.New("vault token is required"))
	}
	if o.Mount == "" {
		errs = append(errs, errors.New("vault mount is required"))
	}
	if o.Path == "" {
		errs = append(errs, errors.New("vault secret path is required"))
	}
	return errors.Join(errs...)
}

// VaultProvider reads configuration keys from one Vault secret.
type VaultProvider struct {
	kv   *api.KVv2
	path string
}

var _ config.Provider = VaultProvider{}

// NewVaultProvider validates opts and builds a Vault client.
func NewVaultProvider(opts VaultOptions) (VaultProvider, error) {
	if err := opts.validate(); err != nil {
		return VaultProvider{}, err
	}

	cfg := api.DefaultConfig()
	cfg.Address = opts.Address
	if opts.HTTPClient != nil {
		cfg.HttpClient = opts.HTTPClient
	}
	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("create vault client: %w", err)
	}
	client.SetToken(opts.Token)

	return VaultProvider{
		kv:   client.KVv2(opts.Mount),
		path: opts.Path,
	}, nil
}

// Get returns the value stored under key. Numbers and booleans are rendered
// as strings; nested values are rejected.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	secret, err := vp.kv.Get(ctx, vp.path)
	if err != nil {
		return "", err
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault secret %s not found", vp.path)
	}

	value, ok := secret.Data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s has no key %s", vp.path, key)
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case fmt.Stringer: // json.Number, as decoded by the Vault client
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("vault key %s holds a %T, not a scalar", key, value)
	}
}

// InitVaultProvider layers Vault over environment variables.
// Leaving VAULT_ADDR unset keeps configuration on environment variables only.
type InitVaultProvider struct {
	Logger     *log.Logger  `resolve:""`
	HttpClient *http.Client `resolve:""`
	Server     string       `config:"VAULT_ADDR" default:"-"`
	Token      string       `config:"VAULT_TOKEN" default:"-"`
	MountPath  string       `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string       `config:"VAULT_SECRET_PATH" default:"teamgo"`
}

// Initialize installs an env-then-Vault composite as the global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == unset {
		ivp.Logger.Printf("InitVaultProvider: VAULT_ADDR not set, reading configuration from the environment")
		return ctx, nil
	}
	opts := VaultOptions{
		Address:    ivp.Server,
		Token:      ivp.Token,
		Mount:      ivp.MountPath,
		Path:       ivp.SecretPath,
		HTTPClient: ivp.HttpClient,
	}
	if opts.Token == unset {
		opts.Token = ""
	}

	vp, err := NewVaultProvider(opts)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(config.NewCompositeProvider(config.EnvVarProvider{}, vp))
	ivp.Logger.Printf("InitVaultProvider: reading %s/%s from %s", opts.Mount, opts.Path, opts.Address)
	return ctx, nil
}
