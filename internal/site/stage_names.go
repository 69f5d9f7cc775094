package site

// StageName is a strongly-typed identifier for a build stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StagePrepareOutput StageName = "prepare_output"
	StageLoadTemplates StageName = "load_templates"
	StageBuildPosts    StageName = "build_posts"
	StageIndex         StageName = "index"
	StageNotFound      StageName = "not_found"
	StageLLMSTxt       StageName = "llms_txt"
	StageSitemap       StageName = "sitemap"
	StageFeed          StageName = "feed"
	StageCopyStatic    StageName = "copy_static"
	StageCNAME         StageName = "cname"
)

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// pipeline is the fixed stage order of a build.
func pipeline() []StageDef {
	return []StageDef{
		{StagePrepareOutput, stagePrepareOutput},
		{StageLoadTemplates, stageLoadTemplates},
		{StageBuildPosts, stageBuildPosts},
		{StageIndex, stageIndex},
		{StageNotFound, stageNotFound},
		{StageLLMSTxt, stageLLMSTxt},
		{StageSitemap, stageSitemap},
		{StageFeed, stageFeed},
		{StageCopyStatic, stageCopyStatic},
		{StageCNAME, stageCNAME},
	}
}
