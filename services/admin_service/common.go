package admin_service

import "resto-go-pos/inout"

// normalizePagination clamps pagination to sane bounds.
func normalizePagination(params *inout.ListpageReq) {
	params.Page = max(params.Page, 1)
	params.PageSize = max(min(params.PageSize, 100), 10)
}
