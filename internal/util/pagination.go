package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/techbuddyspace/certify/internal/constant"
)

// ParsePagination reads page and pageSize query params, falling back to
// page 1 and the default page size on absent or invalid values.
func ParsePagination(ctx *gin.Context) (uint, uint) {
	page, err := strconv.ParseUint(ctx.DefaultQuery("page", "1"), 10, 32)
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.ParseUint(ctx.DefaultQuery("pageSize", "20"), 10, 32)
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = uint64(constant.DefaultPageSize)
	}

	return uint(page), uint(pageSize)
}

func CalculateTotalPage(totalItems int64, pageSize uint) int {
	if pageSize <= 0 {
		pageSize = constant.DefaultPageSize
	}
	if totalItems == 0 {
		return 1
	}
	totalPage := int(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) != 0 {
		totalPage++
	}
	return totalPage
}
