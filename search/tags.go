package search

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
)

// =============================================================================
// 🏷️ 标签特征
// =============================================================================

const (
	// tagSmoothing 标签分布平滑常数。
	tagSmoothing = 1000
	// tagScale 标签得分缩放。
	tagScale = 0.1
	// defaultTopNTags 取用的标签数。
	defaultTopNTags = 3
)

// AllTags 全库 tag_kwd 聚合。
func (d *Dealer) AllTags(ctx context.Context, indexNames, kbIDs []string) ([]Aggregate, error) {
	res, err := d.fanout(ctx, &SearchRequest{
		Filters:    Filters{KBIDs: kbIDs},
		IndexNames: indexNames,
		AggFields:  []string{FieldTagKwd},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate tags: %w", err)
	}
	return res.Aggregations[FieldTagKwd], nil
}

// AllTagsInPortion 平滑后的全库标签占比：(c+1)/(total+S)。
func (d *Dealer) AllTagsInPortion(ctx context.Context, indexNames, kbIDs []string) (map[string]float64, error) {
	aggs, err := d.AllTags(ctx, indexNames, kbIDs)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, a := range aggs {
		total += a.Count
	}
	portion := make(map[string]float64, len(aggs))
	for _, a := range aggs {
		portion[a.Key] = float64(a.Count+1) / float64(total+tagSmoothing)
	}
	return portion, nil
}

// tagFeatures 把聚合桶换算为对全库占比归一的标签权重，取前 topN。
func tagFeatures(aggs []Aggregate, allTags map[string]float64, topN int) []Aggregate {
	if topN <= 0 {
		topN = defaultTopNTags
	}
	var cnt int64
	for _, a := range aggs {
		cnt += a.Count
	}
	feas := make([]Aggregate, 0, len(aggs))
	for _, a := range aggs {
		base := allTags[a.Key]
		if base < 1e-8 {
			base = 0.0001
		}
		score := math.Round(tagScale * float64(a.Count+1) / float64(cnt+tagSmoothing) / base)
		feas = append(feas, Aggregate{Key: a.Key, Count: int64(score)})
	}
	sort.SliceStable(feas, func(i, j int) bool { return feas[i].Count > feas[j].Count })
	if len(feas) > topN {
		feas = feas[:topN]
	}
	return feas
}

// TagQuery 问题侧标签权重：低匹配度检索命中集的 tag_kwd 聚合换算，权重下限 1。
func (d *Dealer) TagQuery(ctx context.Context, question string, indexNames, kbIDs []string, allTags map[string]float64, topNTags int) (map[string]float64, error) {
	matchText, _ := d.qryr.Question(question, 0.05)
	if matchText == nil {
		return map[string]float64{}, nil
	}
	res, err := d.fanout(ctx, &SearchRequest{
		Filters:    Filters{KBIDs: kbIDs},
		MatchText:  matchText,
		IndexNames: indexNames,
		AggFields:  []string{FieldTagKwd},
	})
	if err != nil {
		return nil, fmt.Errorf("tag query: %w", err)
	}
	aggs := res.Aggregations[FieldTagKwd]
	if len(aggs) == 0 {
		return map[string]float64{}, nil
	}
	out := make(map[string]float64, topNTags)
	for _, fea := range tagFeatures(aggs, allTags, topNTags) {
		w := float64(fea.Count)
		if w < 1 {
			w = 1
		}
		out[strings.ReplaceAll(fea.Key, ".", "_")] = w
	}
	return out, nil
}

// TagContent 给片段打标签特征：以片段自身词袋检索近邻，聚合其 tag_kwd。
// 命中为空时返回 false 且不改动片段。
func (d *Dealer) TagContent(ctx context.Context, indexNames, kbIDs []string, ck *Chunk, allTags map[string]float64, topNTags, keywordsTopN int) (bool, error) {
	matchText := d.qryr.Paragraph(ck.TitleTks+" "+ck.ContentLtks, ck.ImportantKwd, keywordsTopN)
	res, err := d.fanout(ctx, &SearchRequest{
		Filters:    Filters{KBIDs: kbIDs},
		MatchText:  matchText,
		IndexNames: indexNames,
		AggFields:  []string{FieldTagKwd},
	})
	if err != nil {
		return false, fmt.Errorf("tag content: %w", err)
	}
	aggs := res.Aggregations[FieldTagKwd]
	if len(aggs) == 0 {
		return false, nil
	}
	feas := make(map[string]float64, topNTags)
	for _, fea := range tagFeatures(aggs, allTags, topNTags) {
		if fea.Count <= 0 {
			continue
		}
		feas[strings.ReplaceAll(fea.Key, ".", "_")] = float64(fea.Count)
	}
	if len(feas) == 0 {
		return false, nil
	}
	ck.TagFeatures = feas
	return true, nil
}
