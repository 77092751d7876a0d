package rendering

import "github.com/kyrec/backend/internal/domain/briefing"

// Cell positions of the scalar form fields on the KY record sheet. The
// layout is fixed; these coordinates belong to the template asset, not to
// this program.
const (
	cellWorkTitle    = "C9"
	cellWorkCompany  = "C10"
	cellPhone        = "G10"
	cellWorkDate     = "C11"
	cellStartTime    = "F11"
	cellEndTime      = "I11"
	cellLocation     = "C12"
	cellPeopleCount  = "G12"
	cellWorkContent1 = "C14"
	cellWorkContent2 = "C15"
	cellFocus        = "B25"
	cellNotes        = "B48"
)

// submitterTrailer prefixes the audit line appended to the focus cell.
const submitterTrailer = "【入力者】"

// Per-group "other" labels. Their cells carry the parenthesized span the
// free-text elaboration is injected into.
const (
	otherHazardLabel    = "その他(危険ポイント)"
	otherAvoidanceLabel = "その他(危険回避)"
	otherFinishLabel    = "その他(終了確認)"
)

var hazardCells = map[string]string{
	"感電・漏電事故":    "B17",
	"火災":         "C17",
	"停電事故":       "D17",
	"漏電事故":       "F17",
	"墜落・落下事故":    "B18",
	"酸欠事故":       "C18",
	"騒音、振動、異臭、埃等のクレーム": "D18",
	otherHazardLabel: "B19",
}

var avoidanceCells = map[string]string{
	"活線作業の禁止":   "B21",
	"不良工具の使用禁止": "C21",
	"保護具使用":     "E21",
	"ヘルメット着用":   "B22",
	"安全帯着用":     "C22",
	"安全柵取付":     "E22",
	"消火器設置":     "G22",
	"作業時間帯調整":   "B23",
	otherAvoidanceLabel: "C23",
}

var finishCells = map[string]string{
	"電源・スイッチ・バルブ等の復旧":  "B44",
	"火気・危険物作業実施後の安全確認": "E44",
	"不要品の搬出及び清掃":       "B45",
	"借用品の返却":           "E45",
	"部屋の施錠":            "B46",
	otherFinishLabel: "E46",
}

// checklistLayout binds one checklist group to its cells and its "other"
// label.
type checklistLayout struct {
	group      briefing.ChecklistGroup
	cells      map[string]string
	otherLabel string
}

var checklistLayouts = []checklistLayout{
	{group: briefing.GroupHazards, cells: hazardCells, otherLabel: otherHazardLabel},
	{group: briefing.GroupAvoidance, cells: avoidanceCells, otherLabel: otherAvoidanceLabel},
	{group: briefing.GroupFinish, cells: finishCells, otherLabel: otherFinishLabel},
}
