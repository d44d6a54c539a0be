package cache

// KeyPopularity is the sorted set of product id -> view count.
const KeyPopularity = "catalog:popularity"
