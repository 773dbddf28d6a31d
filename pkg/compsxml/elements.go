package compsxml

// Element and attribute names of the comps format.
const (
	elComps       = "comps"
	elGroup       = "group"
	elCategory    = "category"
	elEnvironment = "environment"
	elBlacklist   = "blacklist"
	elWhiteout    = "whiteout"

	elID           = "id"
	elName         = "name"
	elDescription  = "description"
	elDefault      = "default"
	elUserVisible  = "uservisible"
	elDisplayOrder = "display_order"
	elLangOnly     = "langonly"
	elPackageList  = "packagelist"
	elPackageReq   = "packagereq"
	elGroupList    = "grouplist"
	elOptionList   = "optionlist"
	elGroupID      = "groupid"
	elPackage      = "package"
	elIgnoreDep    = "ignoredep"

	attrType     = "type"
	attrRequires = "requires"
	attrDefault  = "default"
	attrName     = "name"
	attrArch     = "arch"
	attrPackage  = "package"
	attrLang     = "lang"
)

// xmlNamespace is the namespace the decoder resolves the xml: prefix to.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

const doctype = `<!DOCTYPE comps PUBLIC "-//Red Hat, Inc.//DTD Comps info//EN" "comps.dtd">`
