package keeper

// SanitizePagination exposes sanitizePagination to tests.
var SanitizePagination = sanitizePagination
