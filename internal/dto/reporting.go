package dto

// CommissionReportParams defines query parameters for the commission report.
// groupBy is checked by the accumulator.
type CommissionReportParams struct {
	GroupBy string `form:"groupBy" binding:"required"`
	From    string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To      string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Format  string `form:"format,default=json" binding:"omitempty,oneof=json xlsx pdf"`
}
