package integration

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InitDockerCompose starts the identity server dependencies.
type InitDockerCompose struct {
	compose *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	dc, err := compose.NewDockerCompose("../../docker-compose.deps.yml")
	if err != nil {
		return ctx, err
	}
	i.compose = dc

	err = i.compose.
		WaitForService("postgres", wait.NewLogStrategy(
			"database system is ready to accept connections",
		)).
		WaitForService("vault", wait.NewLogStrategy(
			"Vault server started!",
		)).
		WaitForService("pubsub", wait.NewLogStrategy(
			"Server started",
		)).
		Up(ctx, compose.Wait(true))
	if err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (i InitDockerCompose) Close() {
	if i.compose != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		err := i.compose.Down(
			cancelCtx,
			compose.RemoveOrphans(true),
			compose.RemoveVolumes(true),
			compose.RemoveImages(compose.RemoveImagesLocal),
		)
		if err != nil {
			log.Printf("failed to stop docker compose: %v", err)
		}
	}
}

// InitPubSubTopology creates the users topic and the audit subscription on the emulator.
type InitPubSubTopology struct {
	ProjectID      string
	TopicID        string
	SubscriptionID string
}

func (i InitPubSubTopology) Initialize(ctx context.Context) (context.Context, error) {
	if os.Getenv("PUBSUB_EMULATOR_HOST") == "" {
		return ctx, errors.New("PUBSUB_EMULATOR_HOST must be set")
	}
	client, err := pubsubV2.NewClient(ctx, i.ProjectID)
	if err != nil {
		return ctx, err
	}
	defer client.Close() //nolint:errcheck

	topicName := "projects/" + i.ProjectID + "/topics/" + i.TopicID
	_, err = client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return ctx, err
	}

	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  "projects/" + i.ProjectID + "/subscriptions/" + i.SubscriptionID,
		Topic: topicName,
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return ctx, err
	}
	return ctx, nil
}

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}
