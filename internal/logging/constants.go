package logging

// Standardized field names for structured logging.
const (
	FieldIBAN       = "iban" // always the obfuscated form
	FieldCountry    = "country"
	FieldOperation  = "operation"
	FieldMode       = "mode"
	FieldSource     = "source"
	FieldCount      = "count"
	FieldCandidates = "candidates"
	FieldBackend    = "backend"
	FieldWorkers    = "workers"
	FieldReason     = "reason"
	FieldError      = "error"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
