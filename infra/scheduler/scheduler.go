package scheduler

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/cloudrunv2"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/cloudscheduler"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/ricgcw/chms-backend/infra/cloudrun"
)

// SetupReminderJob provisions the birthday reminder as a Cloud Run job
// triggered nightly by Cloud Scheduler.
func SetupReminderJob(ctx *pulumi.Context,
	prov *gcp.Provider,
	sa *serviceaccount.Account,
	credsSecret pulumi.StringOutput,
	res ...pulumi.Resource) error {

	img, err := cloudrun.BuildImage(ctx, "reminderImage", "../cmd/reminderjob/Dockerfile", "chms-reminderjob", res...)
	if err != nil {
		return err
	}

	job, err := createJob(ctx, prov, img.ImageName, sa, credsSecret)
	if err != nil {
		return err
	}

	if err := allowInvoke(ctx, prov, sa); err != nil {
		return err
	}

	return createSchedule(ctx, prov, job, sa)
}

func createJob(ctx *pulumi.Context,
	prov *gcp.Provider,
	image pulumi.StringOutput,
	sa *serviceaccount.Account,
	credsSecret pulumi.StringOutput) (*cloudrunv2.Job, error) {
	gcpCfg := config.New(ctx, "gcp")
	crCfg := config.New(ctx, "cloudrun")

	projectID := gcpCfg.Require("project")
	region := gcpCfg.Require("region")
	logLevel := crCfg.Require("logLevel")
	env := crCfg.Require("env")

	return cloudrunv2.NewJob(ctx, "reminderJob", &cloudrunv2.JobArgs{
		Name:     pulumi.String("birthday-reminders"),
		Location: pulumi.String(region),

		Template: &cloudrunv2.JobTemplateArgs{
			Template: &cloudrunv2.JobTemplateTemplateArgs{
				ServiceAccount: sa.Email,
				Containers: cloudrunv2.JobTemplateTemplateContainerArray{
					&cloudrunv2.JobTemplateTemplateContainerArgs{
						Image: image,
						Envs: cloudrunv2.JobTemplateTemplateContainerEnvArray{
							&cloudrunv2.JobTemplateTemplateContainerEnvArgs{
								Name:  pulumi.String("PROJECTID"),
								Value: pulumi.String(projectID),
							},
							&cloudrunv2.JobTemplateTemplateContainerEnvArgs{
								Name:  pulumi.String("LOGLEVEL"),
								Value: pulumi.String(logLevel),
							},
							&cloudrunv2.JobTemplateTemplateContainerEnvArgs{
								Name:  pulumi.String("ENV"),
								Value: pulumi.String(env),
							},
							&cloudrunv2.JobTemplateTemplateContainerEnvArgs{
								Name:  pulumi.String("CREDENTIALSSECRET"),
								Value: pulumi.Sprintf("projects/%s/secrets/%s", projectID, credsSecret),
							},
						},
					},
				},
			},
		},
	},
		pulumi.Provider(prov),
	)
}

func allowInvoke(ctx *pulumi.Context, prov *gcp.Provider, sa *serviceaccount.Account) error {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")

	_, err := projects.NewIAMMember(ctx, "reminderInvoker", &projects.IAMMemberArgs{
		Project: pulumi.String(projectID),
		Role:    pulumi.String("roles/run.invoker"),
		Member: sa.Email.ApplyT(func(email string) string {
			return fmt.Sprintf("serviceAccount:%s", email)
		}).(pulumi.StringOutput),
	},
		pulumi.Provider(prov),
	)
	return err
}

func createSchedule(ctx *pulumi.Context, prov *gcp.Provider, job *cloudrunv2.Job, sa *serviceaccount.Account) error {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")
	region := gcpCfg.Require("region")

	svc, err := projects.NewService(ctx, "cloudSchedulerService", &projects.ServiceArgs{
		Service: pulumi.String("cloudscheduler.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return err
	}

	_, err = cloudscheduler.NewJob(ctx, "reminderSchedule", &cloudscheduler.JobArgs{
		Schedule: pulumi.String("0 2 * * *"), // nightly, 02:00 UTC
		TimeZone: pulumi.String("Etc/UTC"),
		HttpTarget: &cloudscheduler.JobHttpTargetArgs{
			HttpMethod: pulumi.String("POST"),
			Uri: pulumi.Sprintf(
				"https://%s-run.googleapis.com/apis/run.googleapis.com/v1/namespaces/%s/jobs/%s:run",
				region, projectID, job.Name,
			),
			OauthToken: &cloudscheduler.JobHttpTargetOauthTokenArgs{
				ServiceAccountEmail: sa.Email,
			},
		},
	},
		pulumi.Provider(prov),
		pulumi.DependsOn([]pulumi.Resource{svc, job}),
	)
	return err
}
