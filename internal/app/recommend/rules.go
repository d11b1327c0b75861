package recommend

import "leadflow/internal/app/catalog"

// RuleRecommender подбирает темы по пересечению тегов
type RuleRecommender struct{}

// Recommend возвращает темы, у которых есть общий тег поддержки или результата.
// Если совпадений нет, возвращается весь каталог
func (RuleRecommender) Recommend(sel Selection) []string {
	support := toSet(sel.Support)
	outcomes := toSet(sel.Outcomes)

	all := catalog.Topics()
	ids := []string{}
	for _, t := range all {
		if intersects(t.RelatedSupport, support) || intersects(t.RelatedOutcomes, outcomes) {
			ids = append(ids, t.ID)
		}
	}
	if len(ids) > 0 {
		return ids
	}

	for _, t := range all {
		ids = append(ids, t.ID)
	}
	return ids
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, v := range items {
		set[v] = struct{}{}
	}
	return set
}

func intersects(tags []string, set map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
