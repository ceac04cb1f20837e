package canonical

// Version tags every CanonicalTagSet produced by this rule vocabulary.
// Bump it when the rule tables change in a way consumers must notice.
const Version = "v1"

// Rule maps one canonical tag to the alias strings that evidence it.
// Rules are kept in slices, not maps, so canonicalization output is
// deterministic for identical input.
type Rule struct {
	Canonical string
	Aliases   []string
}

// stackRules is the fixed vocabulary of technology-stack tags.
var stackRules = []Rule{
	{
		Canonical: "spring_boot",
		Aliases:   []string{"spring boot", "springboot", "스프링부트", "스프링 부트"},
	},
	{
		Canonical: "postgresql",
		Aliases:   []string{"postgres", "postgresql", "postgre", "psql", "포스트그레스"},
	},
	{
		Canonical: "redis",
		Aliases:   []string{"redis", "레디스"},
	},
	{
		Canonical: "github_actions",
		Aliases:   []string{"github action", "github actions", "gh actions", "깃허브 액션", "깃허브 액션즈"},
	},
}

// topicRules is the fixed vocabulary of problem-domain topic tags.
var topicRules = []Rule{
	{
		Canonical: "n_plus_one_optimization",
		Aliases:   []string{"n+1", "n + 1", "nplus1", "엔플러스원"},
	},
	{
		Canonical: "index_tuning",
		Aliases:   []string{"인덱스 튜닝", "index tuning", "index optimize", "query tuning", "쿼리 튜닝"},
	},
	{
		Canonical: "cache_strategy",
		Aliases:   []string{"캐시 도입", "cache", "caching", "캐싱"},
	},
	{
		Canonical: "throughput_optimization",
		Aliases:   []string{"tps", "throughput", "latency", "성능 개선"},
	},
	{
		Canonical: "ci_cd_pipeline",
		Aliases:   []string{"ci/cd", "ci cd", "ci pipeline", "cd pipeline", "배포 자동화", "파이프라인 구축"},
	},
	{
		Canonical: "concurrency_control",
		Aliases:   []string{"동시성 제어", "락", "낙관적 락", "비관적 락", "optimistic lock", "pessimistic lock"},
	},
	{
		Canonical: "inventory_deduction_logic",
		Aliases:   []string{"재고 차감", "재고 감소", "inventory deduction", "stock deduction"},
	},
}

// CategoryRule maps a derived category to the member tags that imply it.
type CategoryRule struct {
	Name    string
	Members map[string]bool
}

// categoryRules derives broad categories from matched tags. A category is
// never asserted independently: it is included exactly when the union of
// matched stack and topic tags intersects its member set.
var categoryRules = []CategoryRule{
	{
		Name:    "backend",
		Members: map[string]bool{"spring_boot": true, "concurrency_control": true, "inventory_deduction_logic": true},
	},
	{
		Name:    "database",
		Members: map[string]bool{"postgresql": true, "index_tuning": true, "n_plus_one_optimization": true},
	},
	{
		Name:    "performance",
		Members: map[string]bool{"throughput_optimization": true, "cache_strategy": true, "index_tuning": true},
	},
	{
		Name:    "devops",
		Members: map[string]bool{"github_actions": true, "ci_cd_pipeline": true},
	},
	{
		Name:    "architecture",
		Members: map[string]bool{"concurrency_control": true, "cache_strategy": true},
	},
}
