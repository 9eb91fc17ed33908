package shared

// Asynq task types
const (
	TypePurgeCreatorMedia = "creator:purge_media"
	TypeReapOrphanUploads = "storage:reap_orphans"
)

// PurgeCreatorMediaPayload - data cho media purge job
// Worker sẽ xóa toàn bộ objects dưới prefix creators/{creatorId}/
type PurgeCreatorMediaPayload struct {
	CreatorID string `json:"creatorId"`
}
