package camtscan

// Context names where in a statement an IBAN was found.
type Context string

const (
	ContextAccount  Context = "account"
	ContextDebtor   Context = "debtor"
	ContextCreditor Context = "creditor"
)

// XPath expressions for IBAN-bearing elements of a CAMT.053 statement.
const (
	XPathAccountIBAN  = "//BkToCstmrStmt/Stmt/Acct/Id/IBAN"
	XPathDebtorIBAN   = "//Ntry/NtryDtls/TxDtls/RltdPties/DbtrAcct/Id/IBAN"   // #nosec G101 -- XPath expression, not credentials
	XPathCreditorIBAN = "//Ntry/NtryDtls/TxDtls/RltdPties/CdtrAcct/Id/IBAN" // #nosec G101 -- XPath expression, not credentials
)

// searchOrder lists the contexts in the order their matches are reported.
var searchOrder = []struct {
	context Context
	xpath   string
}{
	{ContextAccount, XPathAccountIBAN},
	{ContextDebtor, XPathDebtorIBAN},
	{ContextCreditor, XPathCreditorIBAN},
}
