// Package cfnapi provides interfaces for AWS CloudFormation and binds its
// operations to the paging executor.
package cfnapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// ListStacksAPI is the interface for listing stack summaries.
type ListStacksAPI interface {
	ListStacks(ctx context.Context, params *cloudformation.ListStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStacksOutput, error)
}

// DescribeStacksAPI is the interface for describing stacks.
type DescribeStacksAPI interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
}

// DescribeStackEventsAPI is the interface for listing stack events.
type DescribeStackEventsAPI interface {
	DescribeStackEvents(ctx context.Context, params *cloudformation.DescribeStackEventsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackEventsOutput, error)
}

// ListStackResourcesAPI is the interface for listing stack resources.
type ListStackResourcesAPI interface {
	ListStackResources(ctx context.Context, params *cloudformation.ListStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStackResourcesOutput, error)
}

// DeleteStackAPI is the interface for deleting a stack.
type DeleteStackAPI interface {
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
}

// GetTemplateAPI is the interface for retrieving a stack template.
type GetTemplateAPI interface {
	GetTemplate(ctx context.Context, params *cloudformation.GetTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.GetTemplateOutput, error)
}

// ValidateTemplateAPI is the interface for validating a template.
type ValidateTemplateAPI interface {
	ValidateTemplate(ctx context.Context, params *cloudformation.ValidateTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ValidateTemplateOutput, error)
}

// GetTemplateSummaryAPI is the interface for summarizing a template.
type GetTemplateSummaryAPI interface {
	GetTemplateSummary(ctx context.Context, params *cloudformation.GetTemplateSummaryInput, optFns ...func(*cloudformation.Options)) (*cloudformation.GetTemplateSummaryOutput, error)
}

// ListTypesAPI is the interface for listing registry extensions.
type ListTypesAPI interface {
	ListTypes(ctx context.Context, params *cloudformation.ListTypesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListTypesOutput, error)
}

// ListTypeVersionsAPI is the interface for listing extension versions.
type ListTypeVersionsAPI interface {
	ListTypeVersions(ctx context.Context, params *cloudformation.ListTypeVersionsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListTypeVersionsOutput, error)
}

// DescribeTypeAPI is the interface for describing an extension.
type DescribeTypeAPI interface {
	DescribeType(ctx context.Context, params *cloudformation.DescribeTypeInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeTypeOutput, error)
}

// ListExportsAPI is the interface for listing stack exports.
type ListExportsAPI interface {
	ListExports(ctx context.Context, params *cloudformation.ListExportsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListExportsOutput, error)
}

var (
	_ ListStacksAPI          = (*cloudformation.Client)(nil)
	_ DescribeStacksAPI      = (*cloudformation.Client)(nil)
	_ DescribeStackEventsAPI = (*cloudformation.Client)(nil)
	_ ListStackResourcesAPI  = (*cloudformation.Client)(nil)
	_ DeleteStackAPI         = (*cloudformation.Client)(nil)
	_ GetTemplateAPI         = (*cloudformation.Client)(nil)
	_ ValidateTemplateAPI    = (*cloudformation.Client)(nil)
	_ GetTemplateSummaryAPI  = (*cloudformation.Client)(nil)
	_ ListTypesAPI           = (*cloudformation.Client)(nil)
	_ ListTypeVersionsAPI    = (*cloudformation.Client)(nil)
	_ DescribeTypeAPI        = (*cloudformation.Client)(nil)
	_ ListExportsAPI         = (*cloudformation.Client)(nil)
)
