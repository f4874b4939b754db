// Package headers rewrites quoted framework header includes into
// angle-bracket module includes so vendored native sources build against a
// modular framework installation.
package headers

// knownHeaders is a snapshot of the framework's public React headers, taken
// from the pinned upstream version this tool vendors against. The patcher
// runs without an installed native dependency tree, so the set is static
// data rather than something discovered on disk.
var knownHeaders = map[string]bool{
	"RCTAccessibilityManager.h":         true,
	"RCTActionSheetManager.h":           true,
	"RCTAlertManager.h":                 true,
	"RCTAnimationType.h":                true,
	"RCTAppState.h":                     true,
	"RCTAppearance.h":                   true,
	"RCTAssert.h":                       true,
	"RCTBorderDrawing.h":                true,
	"RCTBorderStyle.h":                  true,
	"RCTBridge.h":                       true,
	"RCTBridgeDelegate.h":               true,
	"RCTBridgeMethod.h":                 true,
	"RCTBridgeModule.h":                 true,
	"RCTBundleURLProvider.h":            true,
	"RCTClipboard.h":                    true,
	"RCTComponent.h":                    true,
	"RCTComponentData.h":                true,
	"RCTComponentEvent.h":               true,
	"RCTConstants.h":                    true,
	"RCTConvert.h":                      true,
	"RCTCxxConvert.h":                   true,
	"RCTDefines.h":                      true,
	"RCTDevLoadingViewProtocol.h":       true,
	"RCTDevLoadingViewSetEnabled.h":     true,
	"RCTDevMenu.h":                      true,
	"RCTDevSettings.h":                  true,
	"RCTDeviceInfo.h":                   true,
	"RCTDisplayLink.h":                  true,
	"RCTErrorCustomizer.h":              true,
	"RCTErrorInfo.h":                    true,
	"RCTEventDispatcher.h":              true,
	"RCTEventDispatcherProtocol.h":      true,
	"RCTEventEmitter.h":                 true,
	"RCTExceptionsManager.h":            true,
	"RCTFont.h":                         true,
	"RCTFrameUpdate.h":                  true,
	"RCTI18nUtil.h":                     true,
	"RCTImageDataDecoder.h":             true,
	"RCTImageLoader.h":                  true,
	"RCTImageSource.h":                  true,
	"RCTImageURLLoader.h":               true,
	"RCTInspectorDevServerHelper.h":     true,
	"RCTInvalidating.h":                 true,
	"RCTJSStackFrame.h":                 true,
	"RCTJavaScriptExecutor.h":           true,
	"RCTJavaScriptLoader.h":             true,
	"RCTKeyCommands.h":                  true,
	"RCTLayoutAnimation.h":              true,
	"RCTLayoutAnimationGroup.h":         true,
	"RCTLinkingManager.h":               true,
	"RCTLog.h":                          true,
	"RCTMacros.h":                       true,
	"RCTManagedPointer.h":               true,
	"RCTModalHostViewController.h":      true,
	"RCTModuleData.h":                   true,
	"RCTModuleMethod.h":                 true,
	"RCTMultipartDataTask.h":            true,
	"RCTMultipartStreamReader.h":        true,
	"RCTNetworking.h":                   true,
	"RCTNullability.h":                  true,
	"RCTPackagerClient.h":               true,
	"RCTPackagerConnection.h":           true,
	"RCTParserUtils.h":                  true,
	"RCTPerformanceLogger.h":            true,
	"RCTPlatform.h":                     true,
	"RCTPointerEvents.h":                true,
	"RCTProfile.h":                      true,
	"RCTRedBox.h":                       true,
	"RCTRedBoxSetEnabled.h":             true,
	"RCTReloadCommand.h":                true,
	"RCTResizeMode.h":                   true,
	"RCTRootContentView.h":              true,
	"RCTRootView.h":                     true,
	"RCTRootViewDelegate.h":             true,
	"RCTScrollView.h":                   true,
	"RCTScrollableProtocol.h":           true,
	"RCTShadowView.h":                   true,
	"RCTStatusBarManager.h":             true,
	"RCTSurface.h":                      true,
	"RCTSurfaceDelegate.h":              true,
	"RCTSurfaceHostingProxyRootView.h":  true,
	"RCTSurfaceHostingView.h":           true,
	"RCTSurfacePresenterStub.h":         true,
	"RCTSurfaceRootView.h":              true,
	"RCTSurfaceSizeMeasureMode.h":       true,
	"RCTSurfaceStage.h":                 true,
	"RCTSurfaceView.h":                  true,
	"RCTTextDecorationLineType.h":       true,
	"RCTTiming.h":                       true,
	"RCTTouchHandler.h":                 true,
	"RCTUIManager.h":                    true,
	"RCTUIManagerObserverCoordinator.h": true,
	"RCTUIManagerUtils.h":               true,
	"RCTUIUtils.h":                      true,
	"RCTURLRequestDelegate.h":           true,
	"RCTURLRequestHandler.h":            true,
	"RCTUtils.h":                        true,
	"RCTUtilsUIOverride.h":              true,
	"RCTVersion.h":                      true,
	"RCTVibration.h":                    true,
	"RCTView.h":                         true,
	"RCTViewManager.h":                  true,
	"RCTWeakProxy.h":                    true,
}

// Known reports whether header (a bare file name like "RCTBridge.h") is part
// of the framework's public header snapshot.
func Known(header string) bool {
	return knownHeaders[header]
}
