package cfnapi

import (
	"context"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/smithy-go/middleware"

	"github.com/mpyw/cfnctl/internal/paging"
)

// bind drops the SDK option arguments so an SDK method fits Operation.Call.
func bind[In, Out any](fn func(context.Context, *In, ...func(*cloudformation.Options)) (*Out, error)) func(context.Context, *In) (*Out, error) {
	return func(ctx context.Context, in *In) (*Out, error) {
		return fn(ctx, in)
	}
}

func requestID(metadata middleware.Metadata) string {
	id, _ := awsmiddleware.GetRequestIDMetadata(metadata)

	return id
}

// ListStacks binds ListStacks. Pages are linked by NextToken.
func ListStacks(client ListStacksAPI) paging.Operation[ListStacksInput, ListStacksOutput] {
	return paging.Operation[ListStacksInput, ListStacksOutput]{
		Name:      "ListStacks",
		Call:      bind(client.ListStacks),
		SetCursor: func(in *ListStacksInput, cursor *string) { in.NextToken = cursor },
		Cursor:    func(out *ListStacksOutput) *string { return out.NextToken },
		RequestID: func(out *ListStacksOutput) string { return requestID(out.ResultMetadata) },
	}
}

// SelectStackSummaries is the default ListStacks selector.
func SelectStackSummaries() paging.Selector[ListStacksInput, ListStacksOutput] {
	return paging.Field[ListStacksInput, ListStacksOutput]("StackSummaries", func(out *ListStacksOutput) any {
		return out.StackSummaries
	})
}

// DescribeStacks binds DescribeStacks.
func DescribeStacks(client DescribeStacksAPI) paging.Operation[DescribeStacksInput, DescribeStacksOutput] {
	return paging.Operation[DescribeStacksInput, DescribeStacksOutput]{
		Name:      "DescribeStacks",
		Call:      bind(client.DescribeStacks),
		SetCursor: func(in *DescribeStacksInput, cursor *string) { in.NextToken = cursor },
		Cursor:    func(out *DescribeStacksOutput) *string { return out.NextToken },
		RequestID: func(out *DescribeStacksOutput) string { return requestID(out.ResultMetadata) },
	}
}

// SelectStacks is the default DescribeStacks selector.
func SelectStacks() paging.Selector[DescribeStacksInput, DescribeStacksOutput] {
	return paging.Field[DescribeStacksInput, DescribeStacksOutput]("Stacks", func(out *DescribeStacksOutput) any {
		return out.Stacks
	})
}

// DescribeStackEvents binds DescribeStackEvents.
func DescribeStackEvents(client DescribeStackEventsAPI) paging.Operation[DescribeStackEventsInput, DescribeStackEventsOutput] {
	return paging.Operation[DescribeStackEventsInput, DescribeStackEventsOutput]{
		Name:      "DescribeStackEvents",
		Call:      bind(client.DescribeStackEvents),
		SetCursor: func(in *DescribeStackEventsInput, cursor *string) { in.NextToken = cursor },
		Cursor:    func(out *DescribeStackEventsOutput) *string { return out.NextToken },
		RequestID: func(out *DescribeStackEventsOutput) string { return requestID(out.ResultMetadata) },
	}
}

// SelectStackEvents is the default DescribeStackEvents selector.
func SelectStackEvents() paging.Selector[DescribeStackEventsInput, DescribeStackEventsOutput] {
	return paging.Field[DescribeStackEventsInput, DescribeStackEventsOutput]("StackEvents", func(out *DescribeStackEventsOutput) any {
		return out.StackEvents
	})
}

// ListStackResources binds ListStackResources.
func ListStackResources(client ListStackResourcesAPI) paging.Operation[ListStackResourcesInput, ListStackResourcesOutput] {
	return paging.Operation[ListStackResourcesInput, ListStackResourcesOutput]{
		Name:      "ListStackResources",
		Call:      bind(client.ListStackResources),
		SetCursor: func(in *ListStackResourcesInput, cursor *string) { in.NextToken = cursor },
		Cursor:    func(out *ListStackResourcesOutput) *string { return out.NextToken },
		RequestID: func(out *ListStackResourcesOutput) string { return requestID(out.ResultMetadata) },
	}
}

// SelectStackResourceSummaries is the default ListStackResources selector.
func SelectStackResourceSummaries() paging.Selector[ListStackResourcesInput, ListStackResourcesOutput] {
	return paging.Field[ListStackResourcesInput, ListStackResourcesOutput]("StackResourceSummaries", func(out *ListStackResourcesOutput) any {
		return out.StackResourceSummaries
	})
}

// DeleteStack binds DeleteStack. It is a single-call operation.
func DeleteStack(client DeleteStackAPI) paging.Operation[DeleteStackInput, DeleteStackOutput] {
	return paging.Operation[DeleteStackInput, DeleteStackOutput]{
		Name:      "DeleteStack",
		Call:      bind(client.DeleteStack),
		RequestID: func(out *DeleteStackOutput) string { return requestID(out.ResultMetadata) },
	}
}

// GetTemplate binds GetTemplate. It is a single-call operation.
func GetTemplate(client GetTemplateAPI) paging.Operation[GetTemplateInput, GetTemplateOutput] {
	return paging.Operation[GetTemplateInput, GetTemplateOutput]{
		Name:      "GetTemplate",
		Call:      bind(client.GetTemplate),
		RequestID: func(out *GetTemplateOutput) string { return requestID(out.ResultMetadata) },
	}
}

// SelectTemplateBody is the default GetTemplate selector.
func SelectTemplateBody() paging.Selector[GetTemplateInput, GetTemplateOutput] {
	return paging.Field[GetTemplateInput, GetTemplateOutput]("TemplateBody", func(out *GetTemplateOutput) any {
		return out.TemplateBody
	})
}

// ValidateTemplate binds ValidateTemplate. It is a single-call operation.
func ValidateTemplate(client ValidateTemplateAPI) paging.Operation[ValidateTemplateInput, ValidateTemplateOutput] {
	return paging.Operation[ValidateTemplateInput, ValidateTemplateOutput]{
		Name:      "ValidateTemplate",
		Call:      bind(client.ValidateTemplate),
		RequestID: func(out *ValidateTemplateOutput) string { return requestID(out.ResultMetadata) },
	}
}

// GetTemplateSummary binds GetTemplateSummary. It is a single-call operation.
func GetTemplateSummary(client GetTemplateSummaryAPI) paging.Operation[GetTemplateSummaryInput, GetTemplateSummaryOutput] {
	return paging.Operation[GetTemplateSummaryInput, GetTemplateSummaryOutput]{
		Name:      "GetTemplateSummary",
		Call:      bind(client.GetTemplateSummary),
		RequestID: func(out *GetTemplateSummaryOutput) string { return requestID(out.ResultMetadata) },
	}
}

// ListTypes binds ListTypes.
func ListTypes(client ListTypesAPI) paging.Operation[ListTypesInput, ListTypesOutput] {
	return paging.Operation[ListTypesInput, ListTypesOutput]{
		Name:      "ListTypes",
		Call:      bind(client.ListTypes),
		SetCursor: func(in *ListTypesInput, cursor *string) { in.NextToken = cursor },
		Cursor:    func(out *ListTypesOutput) *string { return out.NextToken },
		RequestID: func(out *ListTypesOutput) string { return requestID(out.ResultMetadata) },
	}
}

// SelectTypeSummaries is the default ListTypes selector.
func SelectTypeSummaries() paging.Selector[ListTypesInput, ListTypesOutput] {
	return paging.Field[ListTypesInput, ListTypesOutput]("TypeSummaries", func(out *ListTypesOutput) any {
		return out.TypeSummaries
	})
}

// ListTypeVersions binds ListTypeVersions.
func ListTypeVersions(client ListTypeVersionsAPI) paging.Operation[ListTypeVersionsInput, ListTypeVersionsOutput] {
	return paging.Operation[ListTypeVersionsInput, ListTypeVersionsOutput]{
		Name:      "ListTypeVersions",
		Call:      bind(client.ListTypeVersions),
		SetCursor: func(in *ListTypeVersionsInput, cursor *string) { in.NextToken = cursor },
		Cursor:    func(out *ListTypeVersionsOutput) *string { return out.NextToken },
		RequestID: func(out *ListTypeVersionsOutput) string { return requestID(out.ResultMetadata) },
	}
}

// SelectTypeVersionSummaries is the default ListTypeVersions selector.
func SelectTypeVersionSummaries() paging.Selector[ListTypeVersionsInput, ListTypeVersionsOutput] {
	return paging.Field[ListTypeVersionsInput, ListTypeVersionsOutput]("TypeVersionSummaries", func(out *ListTypeVersionsOutput) any {
		return out.TypeVersionSummaries
	})
}

// DescribeType binds DescribeType. It is a single-call operation.
func DescribeType(client DescribeTypeAPI) paging.Operation[DescribeTypeInput, DescribeTypeOutput] {
	return paging.Operation[DescribeTypeInput, DescribeTypeOutput]{
		Name:      "DescribeType",
		Call:      bind(client.DescribeType),
		RequestID: func(out *DescribeTypeOutput) string { return requestID(out.ResultMetadata) },
	}
}

// ListExports binds ListExports.
func ListExports(client ListExportsAPI) paging.Operation[ListExportsInput, ListExportsOutput] {
	return paging.Operation[ListExportsInput, ListExportsOutput]{
		Name:      "ListExports",
		Call:      bind(client.ListExports),
		SetCursor: func(in *ListExportsInput, cursor *string) { in.NextToken = cursor },
		Cursor:    func(out *ListExportsOutput) *string { return out.NextToken },
		RequestID: func(out *ListExportsOutput) string { return requestID(out.ResultMetadata) },
	}
}

// SelectExports is the default ListExports selector.
func SelectExports() paging.Selector[ListExportsInput, ListExportsOutput] {
	return paging.Field[ListExportsInput, ListExportsOutput]("Exports", func(out *ListExportsOutput) any {
		return out.Exports
	})
}
