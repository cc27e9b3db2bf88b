package plan

// Diagnostic codes reported while resolving a declaration item.
const (
	CodeUnsupportedItem     = "unsupported_item"
	CodeGenericEnum         = "generic_enum"
	CodeMissingDataCases    = "missing_data_cases"
	CodeLayoutNotNamed      = "layout_not_named"
	CodeDataCaseFields      = "data_case_fields"
	CodeMissingInitializer  = "missing_initializer"
	CodeUnsupportedWidth    = "unsupported_width"
	CodeReservedCapability  = "reserved_capability"
	CodeUnknownCapability   = "unknown_capability"
	CodeDuplicateCapability = "duplicate_capability"
	CodeInvalidExpression   = "invalid_expression"
	CodeInvalidIdentifier   = "invalid_identifier"
	CodeDuplicateName       = "duplicate_name"
	CodeDuplicateField      = "duplicate_field"
	CodeWidthOverflow       = "width_overflow"
)

// Messages whose wording tooling may match on. Keep them stable.
const (
	MsgUnsupportedItem    = "the consttable generator may only be applied to enums"
	MsgGenericEnum        = "a consttable enum cannot be generic"
	MsgMissingDataCases   = "a consttable enum needs at least one variant with a discriminant expression"
	MsgLayoutNotNamed     = "the first variant of a consttable enum should have named fields to specify the table layout"
	MsgDataCaseFields     = "in a consttable enum, only the first variant should have fields"
	MsgMissingInitializer = "in a consttable enum, all but the first variant should have a discriminant expression"
	MsgUnsupportedWidth   = "unsupported repr hint for a consttable enum: expected one of uint8, uint16, uint32 or uint64 (default is uint32)"

	msgReservedCapabilityFmt  = "the %s capability is already implemented by consttable"
	msgUnknownCapabilityFmt   = "unknown capability %q"
	msgDuplicateCapabilityFmt = "capability %s is requested more than once"
	msgInvalidValueFmt        = "initializer of %s is not a valid Go expression: %v"
	msgInvalidTypeFmt         = "type of field %s is not a valid Go type: %s"
	msgInvalidIdentifierFmt   = "%s %q is not a valid Go identifier"
	msgDuplicateNameFmt       = "%q is declared more than once (also %s)"
	msgDuplicateFieldFmt      = "field %q is declared more than once in %s"
	msgWidthOverflowFmt       = "%d cases do not fit in %s"
)
