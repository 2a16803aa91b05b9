// Package infra provides AWS client initialization.
package infra

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/samber/lo"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
)

// Options selects the shared configuration used to build clients.
// Empty fields fall back to the SDK's default resolution chain.
type Options struct {
	Profile string
	Region  string
}

// LoadConfig loads the AWS configuration for opts.
func LoadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}

	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// NewCloudFormationClient creates a new CloudFormation client.
func NewCloudFormationClient(ctx context.Context, opts Options) (*cfnapi.Client, error) {
	cfg, err := LoadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfnapi.NewFromConfig(cfg), nil
}

// AWSIdentity contains the target account, region and profile.
type AWSIdentity struct {
	AccountID string
	Region    string
	Profile   string
}

// GetAWSIdentity resolves the account that commands will act on.
// STS is authoritative; the shared config file is consulted when STS is unreachable.
func GetAWSIdentity(ctx context.Context, opts Options) (*AWSIdentity, error) {
	cfg, err := LoadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	identity := &AWSIdentity{
		Region:  cfg.Region,
		Profile: lo.CoalesceOrEmpty(opts.Profile, envProfile()),
	}

	out, stsErr := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if stsErr == nil {
		identity.AccountID = aws.ToString(out.Account)
		if identity.Profile == "" {
			identity.Profile = findProfileByAccountID(identity.AccountID)
		}

		return identity, nil
	}

	if account, ok := parseAWSConfigProfiles()[lo.CoalesceOrEmpty(identity.Profile, "default")]; ok {
		identity.AccountID = account

		return identity, nil
	}

	return nil, fmt.Errorf("failed to get caller identity: %w", stsErr)
}
