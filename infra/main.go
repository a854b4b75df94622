package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/ricgcw/chms-backend/infra/cloudrun"
	"github.com/ricgcw/chms-backend/infra/docker"
	"github.com/ricgcw/chms-backend/infra/firestore"
	"github.com/ricgcw/chms-backend/infra/provider"
	"github.com/ricgcw/chms-backend/infra/scheduler"
	"github.com/ricgcw/chms-backend/infra/secret"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// enable firestore and create a database for the project
		err = firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx)
		if err != nil {
			return err
		}

		// service account shared by the api and the reminder job
		sa, err := cloudrun.CreateServiceAccount(ctx, prov)
		if err != nil {
			return err
		}

		// secret manager + the credential list secret
		svc, err := secret.SetupSecretManager(ctx, prov, sa)
		if err != nil {
			return err
		}
		credsSecret, err := secret.AddCredentialsSecret(ctx)
		if err != nil {
			return err
		}

		// api service
		err = cloudrun.SetupCloudRun(ctx, prov, sa, credsSecret, repo, svc)
		if err != nil {
			return err
		}

		// nightly birthday reminder job
		err = scheduler.SetupReminderJob(ctx, prov, sa, credsSecret, repo)
		if err != nil {
			return err
		}

		return nil
	})
}
