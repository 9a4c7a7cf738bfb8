package request

// ErrorReportQuery is the query string of a diagnostic report.
type ErrorReportQuery struct {
	Message      string `form:"message"`
	ResponseCode int    `form:"responseCode"`
	StoreGame    string `form:"storeGame"`
	Store        string `form:"store"`
}

type ReceiptForm struct {
	Receipt string `form:"deal=receipt" binding:"required"`
}
