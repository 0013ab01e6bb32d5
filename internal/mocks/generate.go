package mocks

//go:generate mockery --name RuleRepository --srcpkg github.com/aevon-lab/groupby/internal/core/aggregation --output ./aggregation --outpkg aggregationmocks --with-expecter
