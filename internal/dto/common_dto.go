package dto

// RangeQuery limit/offset分页参数
type RangeQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// GetLimit 获取每页数量, 未传时使用调用方指定的默认值
func (q *RangeQuery) GetLimit(defaultLimit int) int {
	if q.Limit < 1 {
		return defaultLimit
	}
	if q.Limit > 1000 {
		return 1000
	}
	return q.Limit
}

// GetOffset 获取偏移量
func (q *RangeQuery) GetOffset() int {
	if q.Offset < 0 {
		return 0
	}
	return q.Offset
}

// IDParam 路径ID参数
type IDParam struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}
