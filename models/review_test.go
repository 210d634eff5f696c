package models

import (
	"testing"
)

func TestApplyVoteCountsFromVoters(t *testing.T) {
	review := Review{}

	review.ApplyVote("1", true)
	review.ApplyVote("2", true)
	review.ApplyVote("3", false)

	if review.HelpfulCount != 2 {
		t.Errorf("有用计数错误: 期望2, 实际%d", review.HelpfulCount)
	}
	if review.NotHelpful != 1 {
		t.Errorf("无用计数错误: 期望1, 实际%d", review.NotHelpful)
	}
}

func TestApplyVoteRepeatRetracts(t *testing.T) {
	review := Review{}

	// 同一用户同方向重复投票视为撤销，不会重复计数
	review.ApplyVote("1", true)
	review.ApplyVote("1", true)

	if review.HelpfulCount != 0 {
		t.Errorf("重复投票应撤销: 期望0, 实际%d", review.HelpfulCount)
	}
	if _, ok := review.Voters["1"]; ok {
		t.Error("撤销后投票明细中不应再有该用户")
	}
}

func TestApplyVoteSwitch(t *testing.T) {
	review := Review{}

	// 反方向投票视为切换，总票数不变
	review.ApplyVote("1", true)
	review.ApplyVote("1", false)

	if review.HelpfulCount != 0 || review.NotHelpful != 1 {
		t.Errorf("切换投票计数错误: helpful=%d, notHelpful=%d", review.HelpfulCount, review.NotHelpful)
	}
}

func TestApplyVoteCountsMatchVoterMap(t *testing.T) {
	review := Review{}

	review.ApplyVote("1", true)
	review.ApplyVote("2", false)
	review.ApplyVote("3", true)
	review.ApplyVote("2", false) // 撤销
	review.ApplyVote("4", false)
	review.ApplyVote("1", false) // 切换

	helpful, notHelpful := 0, 0
	for _, v := range review.Voters {
		if v == VoteHelpful {
			helpful++
		} else {
			notHelpful++
		}
	}

	if review.HelpfulCount != helpful || review.NotHelpful != notHelpful {
		t.Errorf("计数与投票明细不一致: 计数(%d,%d), 明细(%d,%d)",
			review.HelpfulCount, review.NotHelpful, helpful, notHelpful)
	}
}

func TestVoterMapScanValue(t *testing.T) {
	voters := VoterMap{"1": VoteHelpful, "2": VoteNotHelpful}

	value, err := voters.Value()
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}

	var restored VoterMap
	if err := restored.Scan([]byte(value.(string))); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}

	if restored["1"] != VoteHelpful || restored["2"] != VoteNotHelpful {
		t.Errorf("投票明细内容不一致: %+v", restored)
	}
}

func TestVoteUpdatesBumpsVersion(t *testing.T) {
	review := Review{Version: 2}
	review.ApplyVote("1", true)

	updates := review.VoteUpdates()
	if updates["version"] != 3 {
		t.Errorf("版本号应加一: 期望3, 实际%v", updates["version"])
	}
	if updates["helpful_count"] != 1 || updates["not_helpful_count"] != 0 {
		t.Errorf("写回计数错误: helpful=%v, notHelpful=%v",
			updates["helpful_count"], updates["not_helpful_count"])
	}

	// 两个并发投票加载到同一版本时写向同一目标版本，
	// 后提交者的版本条件匹配0行，投票不会被静默覆盖
	stale := Review{Version: 2}
	stale.ApplyVote("2", false)
	if stale.VoteUpdates()["version"] != updates["version"] {
		t.Error("同版本快照必然写向同一目标版本")
	}
}
