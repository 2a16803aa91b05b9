package cfnapi

import (
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// Client is a re-exported CloudFormation client type for dependency injection.
type Client = cloudformation.Client

// Options is a re-exported CloudFormation options type.
type Options = cloudformation.Options

// ListStacksInput is a re-exported CloudFormation input type.
type ListStacksInput = cloudformation.ListStacksInput

// ListStacksOutput is a re-exported CloudFormation output type.
type ListStacksOutput = cloudformation.ListStacksOutput

// DescribeStacksInput is a re-exported CloudFormation input type.
type DescribeStacksInput = cloudformation.DescribeStacksInput

// DescribeStacksOutput is a re-exported CloudFormation output type.
type DescribeStacksOutput = cloudformation.DescribeStacksOutput

// DescribeStackEventsInput is a re-exported CloudFormation input type.
type DescribeStackEventsInput = cloudformation.DescribeStackEventsInput

// DescribeStackEventsOutput is a re-exported CloudFormation output type.
type DescribeStackEventsOutput = cloudformation.DescribeStackEventsOutput

// ListStackResourcesInput is a re-exported CloudFormation input type.
type ListStackResourcesInput = cloudformation.ListStackResourcesInput

// ListStackResourcesOutput is a re-exported CloudFormation output type.
type ListStackResourcesOutput = cloudformation.ListStackResourcesOutput

// DeleteStackInput is a re-exported CloudFormation input type.
type DeleteStackInput = cloudformation.DeleteStackInput

// DeleteStackOutput is a re-exported CloudFormation output type.
type DeleteStackOutput = cloudformation.DeleteStackOutput

// GetTemplateInput is a re-exported CloudFormation input type.
type GetTemplateInput = cloudformation.GetTemplateInput

// GetTemplateOutput is a re-exported CloudFormation output type.
type GetTemplateOutput = cloudformation.GetTemplateOutput

// ValidateTemplateInput is a re-exported CloudFormation input type.
type ValidateTemplateInput = cloudformation.ValidateTemplateInput

// ValidateTemplateOutput is a re-exported CloudFormation output type.
type ValidateTemplateOutput = cloudformation.ValidateTemplateOutput

// GetTemplateSummaryInput is a re-exported CloudFormation input type.
type GetTemplateSummaryInput = cloudformation.GetTemplateSummaryInput

// GetTemplateSummaryOutput is a re-exported CloudFormation output type.
type GetTemplateSummaryOutput = cloudformation.GetTemplateSummaryOutput

// ListTypesInput is a re-exported CloudFormation input type.
type ListTypesInput = cloudformation.ListTypesInput

// ListTypesOutput is a re-exported CloudFormation output type.
type ListTypesOutput = cloudformation.ListTypesOutput

// ListTypeVersionsInput is a re-exported CloudFormation input type.
type ListTypeVersionsInput = cloudformation.ListTypeVersionsInput

// ListTypeVersionsOutput is a re-exported CloudFormation output type.
type ListTypeVersionsOutput = cloudformation.ListTypeVersionsOutput

// DescribeTypeInput is a re-exported CloudFormation input type.
type DescribeTypeInput = cloudformation.DescribeTypeInput

// DescribeTypeOutput is a re-exported CloudFormation output type.
type DescribeTypeOutput = cloudformation.DescribeTypeOutput

// ListExportsInput is a re-exported CloudFormation input type.
type ListExportsInput = cloudformation.ListExportsInput

// ListExportsOutput is a re-exported CloudFormation output type.
type ListExportsOutput = cloudformation.ListExportsOutput

// Stack is a re-exported CloudFormation model type.
type Stack = types.Stack

// Output is a re-exported CloudFormation model type.
type Output = types.Output

// StackSummary is a re-exported CloudFormation model type.
type StackSummary = types.StackSummary

// StackEvent is a re-exported CloudFormation model type.
type StackEvent = types.StackEvent

// StackResourceSummary is a re-exported CloudFormation model type.
type StackResourceSummary = types.StackResourceSummary

// StackStatus is a re-exported CloudFormation model type.
type StackStatus = types.StackStatus

// ResourceStatus is a re-exported CloudFormation model type.
type ResourceStatus = types.ResourceStatus

// TypeSummary is a re-exported CloudFormation model type.
type TypeSummary = types.TypeSummary

// TypeVersionSummary is a re-exported CloudFormation model type.
type TypeVersionSummary = types.TypeVersionSummary

// Export is a re-exported CloudFormation model type.
type Export = types.Export

// RegistryType is a re-exported CloudFormation model type.
type RegistryType = types.RegistryType

// Visibility is a re-exported CloudFormation model type.
type Visibility = types.Visibility

// TemplateStage is a re-exported CloudFormation model type.
type TemplateStage = types.TemplateStage

// Re-exported CloudFormation constants.
const (
	StackStatusDeleteComplete = types.StackStatusDeleteComplete
	RegistryTypeResource      = types.RegistryTypeResource
	RegistryTypeModule        = types.RegistryTypeModule
	RegistryTypeHook          = types.RegistryTypeHook
	VisibilityPublic          = types.VisibilityPublic
	VisibilityPrivate         = types.VisibilityPrivate
	TemplateStageOriginal     = types.TemplateStageOriginal
	TemplateStageProcessed    = types.TemplateStageProcessed
)

// NewFromConfig is a re-exported CloudFormation factory function for dependency injection.
//
//nolint:gochecknoglobals // Re-export of AWS SDK factory function for dependency injection
var NewFromConfig = cloudformation.NewFromConfig
