package pbxproj

// Trimmed but structurally faithful project descriptors shared by the editor
// tests. Indentation is tabs throughout; the insertion anchors match it
// exactly, so do not reformat.

const pristineProject = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
		275915812F132A9200D0E60D /* AppDelegate.swift in Sources */ = {isa = PBXBuildFile; fileRef = 275915802F132A9200D0E60D /* AppDelegate.swift */; };
		275915892F132A9200D0E60D /* Lottie in Frameworks */ = {isa = PBXBuildFile; productRef = 27AE10B12F10B1FC00E00DBC /* Lottie */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		275915802F132A9200D0E60D /* AppDelegate.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = AppDelegate.swift; sourceTree = "<group>"; };
/* End PBXFileReference section */

/* Begin PBXFrameworksBuildPhase section */
		2759157D2F132A9200D0E60D /* Frameworks */ = {
			isa = PBXFrameworksBuildPhase;
			buildActionMask = 2147483647;
			files = (
				275915892F132A9200D0E60D /* Lottie in Frameworks */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXFrameworksBuildPhase section */

/* Begin PBXNativeTarget section */
		2759157F2F132A9200D0E60D /* GlowApp */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = 275915912F132A9200D0E60D /* Build configuration list for PBXNativeTarget "GlowApp" */;
			buildPhases = (
				2759157C2F132A9200D0E60D /* Sources */,
				2759157D2F132A9200D0E60D /* Frameworks */,
			);
			buildRules = (
			);
			dependencies = (
			);
			name = GlowApp;
			packageProductDependencies = (
				27AE10B12F10B1FC00E00DBC /* Lottie */,
			);
			productName = GlowApp;
			productType = "com.apple.product-type.application";
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		275915782F132A9200D0E60D /* Project object */ = {
			isa = PBXProject;
			attributes = {
				BuildIndependentTargetsInParallel = 1;
				LastSwiftUpdateCheck = 1520;
			};
			buildConfigurationList = 2759157B2F132A9200D0E60D /* Build configuration list for PBXProject "GlowApp" */;
			compatibilityVersion = "Xcode 14.0";
			developmentRegion = en;
			hasScannedForEncodings = 0;
			mainGroup = 275915772F132A9200D0E60D;
			packageReferences = (
				27AE10B02F10B1FC00E00DBC /* XCRemoteSwiftPackageReference "lottie-spm" */,
			);
			projectDirPath = "";
			projectRoot = "";
			targets = (
				2759157F2F132A9200D0E60D /* GlowApp */,
			);
		};
/* End PBXProject section */

/* Begin XCRemoteSwiftPackageReference section */
		27AE10B02F10B1FC00E00DBC /* XCRemoteSwiftPackageReference "lottie-spm" */ = {
			isa = XCRemoteSwiftPackageReference;
			repositoryURL = "https://github.com/airbnb/lottie-spm.git";
			requirement = {
				kind = upToNextMajorVersion;
				minimumVersion = 4.5.0;
			};
		};
/* End XCRemoteSwiftPackageReference section */

/* Begin XCSwiftPackageProductDependency section */
		27AE10B12F10B1FC00E00DBC /* Lottie */ = {
			isa = XCSwiftPackageProductDependency;
			package = 27AE10B02F10B1FC00E00DBC /* XCRemoteSwiftPackageReference "lottie-spm" */;
			productName = Lottie;
		};
/* End XCSwiftPackageProductDependency section */
	};
	rootObject = 275915782F132A9200D0E60D /* Project object */;
}
`

// noAnchorProject has neither the anchor dependency nor any Swift package
// sections, so every insertion point is missing.
const noAnchorProject = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
		275915812F132A9200D0E60D /* AppDelegate.swift in Sources */ = {isa = PBXBuildFile; fileRef = 275915802F132A9200D0E60D /* AppDelegate.swift */; };
/* End PBXBuildFile section */

/* Begin PBXFrameworksBuildPhase section */
		2759157D2F132A9200D0E60D /* Frameworks */ = {
			isa = PBXFrameworksBuildPhase;
			buildActionMask = 2147483647;
			files = (
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXFrameworksBuildPhase section */
	};
	rootObject = 275915782F132A9200D0E60D /* Project object */;
}
`

// emptySectionsProject has the two Swift package sections but no anchor
// dependency: the four anchored list insertions miss while the two section
// blocks land through the fallback position before the closing markers.
const emptySectionsProject = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
		275915812F132A9200D0E60D /* AppDelegate.swift in Sources */ = {isa = PBXBuildFile; fileRef = 275915802F132A9200D0E60D /* AppDelegate.swift */; };
/* End PBXBuildFile section */

/* Begin XCRemoteSwiftPackageReference section */
/* End XCRemoteSwiftPackageReference section */

/* Begin XCSwiftPackageProductDependency section */
/* End XCSwiftPackageProductDependency section */
	};
	rootObject = 275915782F132A9200D0E60D /* Project object */;
}
`
