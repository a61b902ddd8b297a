package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// InitClient creates the Pub/Sub client when EVENT_PUBLISHER is "pubsub".
type InitClient struct {
	Logger       *log.Logger `resolve:""`
	Publisher    string      `config:"EVENT_PUBLISHER" default:"pubsub"`
	ProjectID    string      `config:"PUBSUB_PROJECT_ID" default:"teamgo-local"`
	EmulatorHost string      `config:"PUBSUB_EMULATOR_HOST" default:"-"`
	client       *pubsubV2.Client
}

// clientOptions points the client at the emulator, without credentials, when one is configured.
func (i *InitClient) clientOptions() []option.ClientOption {
	if i.EmulatorHost == "" || i.EmulatorHost == "-" {
		return nil
	}
	return []option.ClientOption{
		option.WithEndpoint(i.EmulatorHost),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	}
}

// Initialize registers the *pubsub.Client in the dependency container.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.Publisher != PublisherPubSub {
		return ctx, nil
	}
	if i.client == nil {
		opts := i.clientOptions()
		client, err := pubsubV2.NewClient(ctx, i.ProjectID, opts...)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
		if len(opts) > 0 {
			i.Logger.Printf("InitClient: using pubsub emulator at %s for project %s", i.EmulatorHost, i.ProjectID)
		}
	}

	depend.Register(i.client)
	return ctx, nil
}

// Close closes the client if one was created.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
	i.client = nil
}
